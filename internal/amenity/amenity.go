// Package amenity normalizes client-submitted amenity values into a
// canonical list of strings. Clients send amenities in several shapes
// (JSON array, JSON array encoded as a string, comma/semicolon lists,
// whitespace lists, quoted fragments, bare scalars) and the admin forms
// have historically produced all of them.
package amenity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize converts an arbitrary amenities value into an ordered list
// of trimmed, non-empty strings. It never fails: malformed input
// degrades to a best-effort split instead of rejecting the write.
// Order is preserved, duplicates are retained, case is untouched.
func Normalize(v interface{}) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, stringify(item))
		}
		return out
	case string:
		return normalizeString(val)
	case bool:
		// False means the field was submitted empty.
		if !val {
			return []string{}
		}
		return []string{"true"}
	case float64:
		if val == 0 {
			return []string{}
		}
		return []string{stringify(val)}
	default:
		return []string{stringify(val)}
	}
}

func normalizeString(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	// Tier 1: the value may itself be JSON ("[\"wifi\",\"parking\"]").
	var decoded interface{}
	if err := json.Unmarshal([]byte(s), &decoded); err == nil {
		switch d := decoded.(type) {
		case []interface{}:
			out := make([]string, 0, len(d))
			for _, item := range d {
				out = append(out, strings.TrimSpace(stringify(item)))
			}
			return out
		case nil:
			return []string{}
		default:
			return []string{strings.TrimSpace(stringify(d))}
		}
	}

	// Tier 2: free text. Strip quotes, then split on comma/semicolon if
	// either is present, otherwise on whitespace.
	clean := strings.NewReplacer(`"`, "", `'`, "").Replace(s)
	var chunks []string
	if strings.ContainsAny(clean, ",;") {
		chunks = strings.FieldsFunc(clean, func(r rune) bool {
			return r == ',' || r == ';'
		})
	} else {
		chunks = strings.Fields(clean)
	}

	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if t := strings.TrimSpace(c); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; keep integers unpadded.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
