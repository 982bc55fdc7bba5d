// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize cleans strings that originate outside this app
// before they are rendered as HTML. Backend-authored error messages and
// product titles pass through here on their way into flashes and inline
// error banners, which the views render as markup.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows basic inline formatting and nothing that can execute or
// navigate: no scripts, handlers, links, or block structure.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "code")
	return p
}()

var strict = bluemonday.StrictPolicy()

// Sanitize strips everything but basic inline formatting from s.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// Text strips all markup from s, leaving plain text.
func Text(s string) string {
	return strict.Sanitize(s)
}
