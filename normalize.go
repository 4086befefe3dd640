package hnthread

import (
	"context"
	"fmt"
)

// Normalizer maps raw items into comments, converting text with Converter.
// The zero value strips tags with StripHTML.
type Normalizer struct {
	Converter Converter
}

// Normalize returns the normalized form of item and, recursively, of its
// children in their original order. A nil item yields a nil comment.
func (n *Normalizer) Normalize(item *Item) (*Comment, error) {
	if item == nil {
		return nil, nil
	}

	c := &Comment{
		ID:     item.ID,
		Author: item.Author,
		Points: item.Points,
	}

	if item.Text != nil && *item.Text != "" {
		text, err := n.converter().Convert(*item.Text)
		if err != nil {
			return nil, fmt.Errorf("convert text of item %d: %w", item.ID, err)
		}
		c.Text = &text
	}

	if len(item.Children) > 0 {
		children, err := n.normalizeAll(item.Children)
		if err != nil {
			return nil, err
		}
		c.Children = children
	}

	return c, nil
}

// BuildResult assembles the thread result for a top-level item. The item's
// own text is not part of the result; only its children become comments.
func (n *Normalizer) BuildResult(item *Item) (*Result, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	comments, err := n.normalizeAll(item.Children)
	if err != nil {
		return nil, err
	}

	return &Result{
		ID:       item.ID,
		Title:    item.Title,
		URL:      item.URL,
		Points:   item.Points,
		Author:   item.Author,
		Comments: comments,
	}, nil
}

// normalizeAll normalizes items, dropping nil results. It never returns a
// nil slice.
func (n *Normalizer) normalizeAll(items []*Item) ([]*Comment, error) {
	out := make([]*Comment, 0, len(items))
	for _, item := range items {
		c, err := n.Normalize(item)
		if err != nil {
			return nil, err
		}
		if c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (n *Normalizer) converter() Converter {
	if n.Converter == nil {
		return StripConverter
	}
	return n.Converter
}

// NormalizeComment normalizes item with tag stripping.
func NormalizeComment(item *Item) *Comment {
	// Stripping cannot fail.
	c, _ := (&Normalizer{}).Normalize(item)
	return c
}

// BuildResult assembles a result for item with tag stripping.
func BuildResult(item *Item) (*Result, error) {
	return (&Normalizer{}).BuildResult(item)
}

// FetchThread resolves input to an item id, fetches the item and returns
// its normalized thread. A nil normalizer strips tags.
func FetchThread(ctx context.Context, fetcher ItemFetcher, input string, n *Normalizer) (*Result, error) {
	if n == nil {
		n = &Normalizer{}
	}

	item, err := fetcher.FetchItem(ctx, ExtractID(input))
	if err != nil {
		return nil, err
	}

	return n.BuildResult(item)
}
