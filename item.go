package hnthread

import "context"

// Item represents a Hacker News item as returned by the items API.
// Stories, jobs, polls and comments share this shape; comment trees are
// nested through Children.
type Item struct {
	ID       int     `json:"id"`
	Author   string  `json:"author"`
	Title    *string `json:"title,omitempty"`
	URL      *string `json:"url,omitempty"`
	Text     *string `json:"text,omitempty"` // raw HTML
	Points   *int    `json:"points,omitempty"`
	Children []*Item `json:"children,omitempty"`
}

// Validate returns an error if the item cannot be turned into a thread.
// Only the top-level item is checked; nested comments are normalized as-is.
func (i *Item) Validate() error {
	if i == nil {
		return Errorf(EINVALID, "item required")
	}
	if i.ID == 0 {
		return Errorf(EINVALID, "item id required")
	}
	return nil
}

// Comment is a normalized comment with plain-text content.
// Optional fields are nil when the source item did not carry them.
type Comment struct {
	ID       int        `json:"id"`
	Author   string     `json:"author"`
	Points   *int       `json:"points,omitempty"`
	Text     *string    `json:"text,omitempty"`
	Children []*Comment `json:"children,omitempty"`
}

// Result is the normalized thread printed by the CLI.
type Result struct {
	ID       int        `json:"id"`
	Title    *string    `json:"title,omitempty"`
	URL      *string    `json:"url,omitempty"`
	Points   *int       `json:"points,omitempty"`
	Author   string     `json:"author"`
	Comments []*Comment `json:"comments"`
}

// ItemFetcher retrieves a single item, including its full comment tree.
type ItemFetcher interface {
	// FetchItem returns the item with the given id.
	// Returns ENOTFOUND if the item does not exist.
	FetchItem(ctx context.Context, id string) (*Item, error)
}
