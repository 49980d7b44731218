package tags

import "strings"

// Normalize returns the canonical identity form of a tag: the stringified
// value, lower-cased unless caseSensitive is set. This is the sole
// definition of sameness used for duplicate comparison.
func Normalize(t Tag, caseSensitive bool) string {
	s := t.Label()
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// normalizeSet builds a lookup of the normalized forms already present in
// the collection.
func normalizeSet(collection []Tag, caseSensitive bool) map[string]struct{} {
	set := make(map[string]struct{}, len(collection))
	for _, t := range collection {
		set[Normalize(t, caseSensitive)] = struct{}{}
	}
	return set
}
