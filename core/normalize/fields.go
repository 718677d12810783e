package normalize

import (
	"fmt"

	"github.com/gaurav-prasanna/animalpage/core"
)

// str returns the string stored under key, or nil when m is nil, the key is
// missing, or the value is not a string. An empty string is returned as-is.
func str(m map[string]any, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// object returns the nested object under key, or nil.
func object(m map[string]any, key string) map[string]any {
	nested, _ := m[key].(map[string]any)
	return nested
}

// stringList reads an array of strings. A missing or null key yields nil;
// a supplied empty array yields a non-nil empty slice.
func stringList(m map[string]any, key string) ([]string, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is %s, want array", key, core.JSONType(raw))
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] is %s, want string", key, i, core.JSONType(item))
		}
		out = append(out, s)
	}
	return out, nil
}
