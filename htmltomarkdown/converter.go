// Package htmltomarkdown renders comment HTML as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/hnthread"
)

// Ensure Converter implements hnthread.Converter at compile time.
var _ hnthread.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert comment HTML to Markdown.
// Unlike hnthread.StripHTML it keeps links, emphasis and code blocks, and
// decodes entities.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown.
// Whitespace-only input converts to an empty string.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", hnthread.Errorf(hnthread.EINVALID, "convert html: %v", err)
	}

	return result, nil
}
