package analysis

// ClassifiedArtist is an artist row with its derived fields attached:
// canonical genres, chart-hit aggregates, and collaboration count.
type ClassifiedArtist struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Followers    int64    `yaml:"followers"`
	Popularity   int      `yaml:"popularity"`
	Genres       []string `yaml:"genres"`
	GenreCount   int      `yaml:"genre_count"`
	TotalHits    int      `yaml:"total_hits"`
	NumCountries int      `yaml:"num_countries"`
	CollabCount  int      `yaml:"collab_count"`
}

// Dataset is the cleaned analytical dataset: the most popular artists
// that survived genre classification, chart-hit joining, and both
// outlier filters, ordered by popularity descending.
type Dataset struct {
	Artists []ClassifiedArtist `yaml:"artists"`
}

// Size returns the number of surviving rows.
func (d *Dataset) Size() int {
	return len(d.Artists)
}

// Top returns the n most popular rows. The dataset is already sorted,
// so this is a prefix; n larger than the dataset returns everything.
func (d *Dataset) Top(n int) []ClassifiedArtist {
	if n > len(d.Artists) {
		n = len(d.Artists)
	}
	return d.Artists[:n]
}

// GenreStat is the mean collaboration count across the dataset's
// artists in one canonical genre.
type GenreStat struct {
	Genre             string  `yaml:"genre"`
	ArtistCount       int     `yaml:"artist_count"`
	AvgCollaborations float64 `yaml:"avg_collaborations"`
}

// Report bundles everything the presentation layer consumes.
type Report struct {
	Metadata   ReportMetadata     `yaml:"metadata"`
	Artists    []ClassifiedArtist `yaml:"artists"`
	GenreStats []GenreStat        `yaml:"genre_stats"`
}

type ReportMetadata struct {
	GeneratedDate string `yaml:"generated_date"`
	TotalArtists  int    `yaml:"total_artists"`
	TotalEdges    int    `yaml:"total_edges"`
	DatasetSize   int    `yaml:"dataset_size"`
}
