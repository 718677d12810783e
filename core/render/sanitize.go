package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	valuePolicyOnce sync.Once
	valuePolicy     *bluemonday.Policy
)

// sanitizeValue removes all markup from a field value and escapes what is
// left, so the value renders as text.
func sanitizeValue(raw string) string {
	if raw == "" {
		return ""
	}
	return valueSanitizer().Sanitize(raw)
}

func valueSanitizer() *bluemonday.Policy {
	valuePolicyOnce.Do(func() {
		valuePolicy = bluemonday.StrictPolicy()
	})
	return valuePolicy
}
