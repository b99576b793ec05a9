// Package jsonlist converts between the persisted flat-string form of
// list-valued columns (a JSON array serialized to TEXT) and []string.
// Legacy rows may hold empty or malformed values; Decode tolerates them.
package jsonlist

import "encoding/json"

// Encode serializes the list to its persisted string form.
// A nil or empty list encodes to "[]", never to an empty string.
func Encode(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// Decode parses the persisted string form back into a list.
// Absent, empty, or malformed input yields an empty list rather than an
// error so that old rows never break readers.
func Decode(s string) []string {
	if s == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return []string{}
	}
	if items == nil {
		return []string{}
	}
	return items
}
