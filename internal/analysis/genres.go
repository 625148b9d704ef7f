package analysis

import (
	"time"

	"github.com/acantor/spotify-net-tools/internal/dataset"
	"github.com/acantor/spotify-net-tools/internal/genre"
)

// GenreCollaborationStats computes, for every canonical bucket, the mean
// collaboration count over the dataset's artists in that bucket. Buckets
// with no artists report 0. An artist in several buckets contributes to
// each of them.
func GenreCollaborationStats(d *Dataset, taxonomy genre.Taxonomy) []GenreStat {
	stats := make([]GenreStat, 0, len(taxonomy))
	for _, name := range taxonomy.Names() {
		var sum, count int
		for _, artist := range d.Artists {
			for _, g := range artist.Genres {
				if g == name {
					sum += artist.CollabCount
					count++
					break
				}
			}
		}
		stat := GenreStat{Genre: name, ArtistCount: count}
		if count > 0 {
			stat.AvgCollaborations = float64(sum) / float64(count)
		}
		stats = append(stats, stat)
	}
	return stats
}

// BuildReport assembles the full report for rendering or delivery.
func BuildReport(tables *dataset.Tables, d *Dataset, taxonomy genre.Taxonomy) *Report {
	return &Report{
		Metadata: ReportMetadata{
			GeneratedDate: time.Now().Format("2006-01-02"),
			TotalArtists:  len(tables.Artists),
			TotalEdges:    len(tables.Edges),
			DatasetSize:   d.Size(),
		},
		Artists:    d.Artists,
		GenreStats: GenreCollaborationStats(d, taxonomy),
	}
}
