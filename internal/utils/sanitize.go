package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizePolicy = bluemonday.UGCPolicy()

// Sanitize neutralizes embedded markup in user-supplied text before it
// is echoed back in a response.
func Sanitize(value string) string {
	return sanitizePolicy.Sanitize(value)
}
