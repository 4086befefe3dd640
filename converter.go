package hnthread

// Converter converts comment HTML into the text stored on a Comment.
type Converter interface {
	// Convert transforms an HTML fragment as found in an item's text field.
	Convert(html string) (string, error)
}
