package mock

import (
	"context"

	"github.com/fwojciec/hnthread"
)

var _ hnthread.ItemFetcher = (*ItemFetcher)(nil)

// ItemFetcher is a mock implementation of hnthread.ItemFetcher.
type ItemFetcher struct {
	FetchItemFn func(ctx context.Context, id string) (*hnthread.Item, error)
}

func (f *ItemFetcher) FetchItem(ctx context.Context, id string) (*hnthread.Item, error) {
	return f.FetchItemFn(ctx, id)
}
