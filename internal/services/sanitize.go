package service

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from admin supplied catalog text, which the
// storefront renders. Entities the policy escapes are turned back into plain
// characters.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// plainText cleans shopper text that only ever travels as plain text (chat
// message, box names). Angle brackets and the like are kept as typed; control
// characters other than newlines and tabs are dropped.
func plainText(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}

		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}

		return r
	}, s)

	return strings.TrimSpace(cleaned)
}
