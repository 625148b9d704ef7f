package analysis

import (
	"sort"

	"go.uber.org/zap"

	"github.com/acantor/spotify-net-tools/internal/charts"
	"github.com/acantor/spotify-net-tools/internal/dataset"
	"github.com/acantor/spotify-net-tools/internal/genre"
)

// DefaultLimit caps the popularity selection before filtering.
const DefaultLimit = 100

type Options struct {
	// Limit is the size of the initial top-by-popularity selection, and
	// the cap re-applied after the join drops rows. Defaults to
	// DefaultLimit when zero.
	Limit int
}

// BuildDataset runs the cleaning pipeline over the immutable base
// tables:
//
//  1. take the top artists by popularity,
//  2. classify genres and drop artists matching no canonical bucket,
//  3. join chart-hit aggregates and drop artists with none,
//  4. re-sort and re-truncate,
//  5. drop follower and popularity outliers (Tukey fence),
//  6. join collaboration counts,
//  7. drop collaboration-count outliers (mean ± 2σ).
//
// The row count never grows after stage 1, and an empty result is a
// valid outcome. Rebuilding from the same tables yields the same
// dataset.
func BuildDataset(tables *dataset.Tables, taxonomy genre.Taxonomy, log *zap.SugaredLogger, opts Options) *Dataset {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	selected := topByPopularity(tables.Artists, limit)

	rows := classify(selected, taxonomy)
	rows = joinChartStats(rows, tables, log)

	// Re-sort and re-truncate after the drops; the dataset may end up
	// smaller than the limit.
	sortByPopularity(rows)
	if len(rows) > limit {
		rows = rows[:limit]
	}

	rows = dropTukeyOutliers(rows, func(a ClassifiedArtist) float64 { return float64(a.Followers) })
	rows = dropTukeyOutliers(rows, func(a ClassifiedArtist) float64 { return float64(a.Popularity) })

	joinCollabCounts(rows, tables.Edges)
	rows = dropCollabOutliers(rows)

	log.Debugw("built analytical dataset", "selected", len(selected), "survived", len(rows))
	return &Dataset{Artists: rows}
}

// topByPopularity selects the n most popular artists. The sort is
// stable, so ties keep their input order.
func topByPopularity(artists []dataset.Artist, n int) []dataset.Artist {
	selected := make([]dataset.Artist, len(artists))
	copy(selected, artists)
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Popularity > selected[j].Popularity
	})
	if len(selected) > n {
		selected = selected[:n]
	}
	return selected
}

// classify attaches canonical genres and drops artists that match no
// bucket.
func classify(artists []dataset.Artist, taxonomy genre.Taxonomy) []ClassifiedArtist {
	var rows []ClassifiedArtist
	for _, a := range artists {
		canonical := taxonomy.Classify(a.Genres)
		if len(canonical) == 0 {
			continue
		}
		rows = append(rows, ClassifiedArtist{
			ID:         a.ID,
			Name:       a.Name,
			Followers:  a.Followers,
			Popularity: a.Popularity,
			Genres:     canonical,
			GenreCount: len(canonical),
		})
	}
	return rows
}

// joinChartStats attaches chart-hit aggregates and drops artists whose
// chart-hit list yielded nothing. Dropping rather than zero-filling is
// the business rule: an artist without parseable chart data is missing,
// not unranked.
func joinChartStats(rows []ClassifiedArtist, tables *dataset.Tables, log *zap.SugaredLogger) []ClassifiedArtist {
	var kept []ClassifiedArtist
	for _, row := range rows {
		artist, err := tables.Artist(row.ID)
		if err != nil {
			continue
		}
		hits := charts.Expand(row.ID, artist.ChartHits, log)
		if len(hits) == 0 {
			continue
		}
		stats := charts.Aggregate(hits)
		row.TotalHits = stats.TotalHits
		row.NumCountries = stats.NumCountries
		kept = append(kept, row)
	}
	return kept
}

func sortByPopularity(rows []ClassifiedArtist) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Popularity > rows[j].Popularity
	})
}

func dropTukeyOutliers(rows []ClassifiedArtist, value func(ClassifiedArtist) float64) []ClassifiedArtist {
	if len(rows) == 0 {
		return rows
	}
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = value(row)
	}
	lower, upper := tukeyFences(values)

	var kept []ClassifiedArtist
	for i, row := range rows {
		if values[i] >= lower && values[i] <= upper {
			kept = append(kept, row)
		}
	}
	return kept
}

// joinCollabCounts counts each artist's appearances across all edges.
// Both endpoints count and duplicate edges count again; this is the raw
// collaboration volume, not the simple-graph degree. Artists absent
// from the edge relation get 0.
func joinCollabCounts(rows []ClassifiedArtist, edges []dataset.Edge) {
	counts := make(map[string]int)
	for _, e := range edges {
		counts[e.ID0]++
		counts[e.ID1]++
	}
	for i := range rows {
		rows[i].CollabCount = counts[rows[i].ID]
	}
}

func dropCollabOutliers(rows []ClassifiedArtist) []ClassifiedArtist {
	// The sample deviation is undefined below two rows.
	if len(rows) < 2 {
		return rows
	}
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = float64(row.CollabCount)
	}
	lower, upper := meanStdBounds(values)

	var kept []ClassifiedArtist
	for i, row := range rows {
		if values[i] >= lower && values[i] <= upper {
			kept = append(kept, row)
		}
	}
	return kept
}
