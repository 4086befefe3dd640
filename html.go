package hnthread

import "regexp"

// htmlTag matches a tag, or an unterminated "<" through the end of input.
var htmlTag = regexp.MustCompile(`<[^>]*>?`)

// StripHTML removes markup tags from s. Entities such as &amp; are left
// untouched.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlTag.ReplaceAllString(s, "")
}

// ConverterFunc adapts an ordinary function to the Converter interface.
type ConverterFunc func(html string) (string, error)

// Convert calls f(html).
func (f ConverterFunc) Convert(html string) (string, error) {
	return f(html)
}

// StripConverter converts comment HTML with StripHTML.
var StripConverter Converter = ConverterFunc(func(html string) (string, error) {
	return StripHTML(html), nil
})
