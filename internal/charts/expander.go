// Package charts parses the serialized chart-hit lists carried on the
// node relation. Its failure policy is deliberately different from the
// genre field's: a malformed entry voids the whole artist's chart data,
// with a log line, instead of being silently normalized.
package charts

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Hit is one chart appearance: an artist charted at the given rank in
// the given country.
type Hit struct {
	ArtistID string
	Country  string
	Rank     int
}

// Stats aggregates an artist's chart hits. TotalHits is the raw sum of
// ranks across all countries, not the entry count.
type Stats struct {
	TotalHits    int
	NumCountries int
}

// entryPattern matches one serialized entry, e.g. "(US 1)".
var entryPattern = regexp.MustCompile(`^\(([A-Za-z]+) ([0-9]+)\)$`)

var quotedItem = regexp.MustCompile(`'([^']*)'|"([^"]*)"`)

// Expand parses an artist's serialized chart-hit list. Any malformed
// entry fails the whole artist: the error is logged and the result is
// empty. The failure is isolated to this artist; the caller keeps going.
func Expand(artistID, raw string, log *zap.SugaredLogger) []Hit {
	s := strings.TrimSpace(raw)
	if s == "" || s == "[]" {
		return nil
	}

	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		log.Warnw("dropping unparsable chart hits", "artist", artistID, "value", raw)
		return nil
	}

	var hits []Hit
	for _, m := range quotedItem.FindAllStringSubmatch(s, -1) {
		entry := m[1]
		if entry == "" {
			entry = m[2]
		}

		parts := entryPattern.FindStringSubmatch(entry)
		if parts == nil {
			log.Warnw("dropping unparsable chart hits", "artist", artistID, "entry", entry)
			return nil
		}
		rank, err := strconv.Atoi(parts[2])
		if err != nil || rank <= 0 {
			log.Warnw("dropping unparsable chart hits", "artist", artistID, "entry", entry)
			return nil
		}

		hits = append(hits, Hit{ArtistID: artistID, Country: parts[1], Rank: rank})
	}

	if len(hits) == 0 {
		log.Warnw("dropping unparsable chart hits", "artist", artistID, "value", raw)
		return nil
	}
	return hits
}

// Aggregate sums ranks and counts distinct countries. The result does
// not depend on entry order.
func Aggregate(hits []Hit) Stats {
	countries := make(map[string]bool)
	stats := Stats{}
	for _, hit := range hits {
		stats.TotalHits += hit.Rank
		countries[hit.Country] = true
	}
	stats.NumCountries = len(countries)
	return stats
}
