package hnthread

import (
	"bytes"
	"encoding/json"
)

// FormatResult renders r as JSON indented with two spaces and terminated by
// a newline. HTML characters are written literally rather than escaped, so
// comment text reads the same as it does on the site.
func FormatResult(r *Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
