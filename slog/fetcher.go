// Package slog provides log/slog decorators for hnthread services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hnthread"
)

// Ensure LoggingItemFetcher implements hnthread.ItemFetcher.
var _ hnthread.ItemFetcher = (*LoggingItemFetcher)(nil)

// LoggingItemFetcher wraps an ItemFetcher with request logging.
type LoggingItemFetcher struct {
	next   hnthread.ItemFetcher
	logger *slog.Logger
}

// NewLoggingItemFetcher creates a new LoggingItemFetcher.
func NewLoggingItemFetcher(next hnthread.ItemFetcher, logger *slog.Logger) *LoggingItemFetcher {
	return &LoggingItemFetcher{next: next, logger: logger}
}

// FetchItem delegates to the wrapped fetcher and logs the operation.
func (f *LoggingItemFetcher) FetchItem(ctx context.Context, id string) (item *hnthread.Item, err error) {
	defer func(begin time.Time) {
		comments := 0
		if item != nil {
			comments = len(item.Children)
		}
		f.logger.Info("item fetch",
			"id", id,
			"comments", comments,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchItem(ctx, id)
}
