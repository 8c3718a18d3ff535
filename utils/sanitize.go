package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// SanitizeText strips all markup. Used for titles, names and other plain fields.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// SanitizeRichText keeps the safe subset of HTML that editors are allowed to author.
func SanitizeRichText(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}
