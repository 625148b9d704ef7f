package genre

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bucket is one canonical genre with the substrings that map raw tags
// into it.
type Bucket struct {
	Name       string
	Substrings []string
}

// Taxonomy maps free-text genre tags onto a small set of canonical
// buckets. Bucket order is significant only for presentation; matching
// considers every bucket.
type Taxonomy []Bucket

// Default returns the fixed ten-bucket taxonomy.
func Default() Taxonomy {
	return Taxonomy{
		{Name: "pop", Substrings: []string{"pop", "k-pop", "j-pop", "cantopop", "mandopop", "synthpop", "electropop"}},
		{Name: "rock", Substrings: []string{"rock", "hard rock", "punk rock", "alternative rock", "indie rock", "classic rock"}},
		{Name: "hip-hop", Substrings: []string{"hip hop", "rap", "trap", "gangsta rap", "alternative hip hop"}},
		{Name: "edm", Substrings: []string{"edm", "electronic", "house", "techno", "dubstep", "trance"}},
		{Name: "r&b", Substrings: []string{"r&b", "soul", "neo soul", "funk"}},
		{Name: "country", Substrings: []string{"country", "country pop", "outlaw country"}},
		{Name: "jazz", Substrings: []string{"jazz", "bebop", "swing", "cool jazz", "fusion"}},
		{Name: "classical", Substrings: []string{"classical", "orchestral", "chamber music", "baroque", "romantic", "symphony"}},
		{Name: "latin", Substrings: []string{"latin", "reggaeton", "salsa", "bachata", "latin pop"}},
		{Name: "reggae", Substrings: []string{"reggae", "dub", "dancehall"}},
	}
}

// Classify maps raw tags onto canonical buckets. Matching is
// case-insensitive substring containment, and buckets are not mutually
// exclusive: a tag list of ["k-pop", "trap"] maps to both pop and
// hip-hop. The result follows taxonomy order, with no duplicates; it is
// empty when nothing matches.
func (t Taxonomy) Classify(tags []string) []string {
	var matched []string
	for _, bucket := range t {
		if bucket.matchesAny(tags) {
			matched = append(matched, bucket.Name)
		}
	}
	return matched
}

// Names returns the canonical bucket names in taxonomy order.
func (t Taxonomy) Names() []string {
	names := make([]string, len(t))
	for i, bucket := range t {
		names[i] = bucket.Name
	}
	return names
}

func (b Bucket) matchesAny(tags []string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, sub := range b.Substrings {
			if strings.Contains(lower, sub) {
				return true
			}
		}
	}
	return false
}

// LoadFile reads a taxonomy from a YAML mapping of canonical name to
// substring list, preserving the file's key order.
func LoadFile(path string) (Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML taxonomy document.
func Parse(raw []byte) (Taxonomy, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing taxonomy: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty taxonomy document")
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("taxonomy must be a mapping of genre to substrings")
	}

	var taxonomy Taxonomy
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		var substrings []string
		if err := mapping.Content[i+1].Decode(&substrings); err != nil {
			return nil, fmt.Errorf("genre %q: %w", key.Value, err)
		}
		taxonomy = append(taxonomy, Bucket{Name: key.Value, Substrings: substrings})
	}
	return taxonomy, nil
}
