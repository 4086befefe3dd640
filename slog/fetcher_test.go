package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/hnthread"
	"github.com/fwojciec/hnthread/mock"
	hnslog "github.com/fwojciec/hnthread/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingItemFetcher_FetchItem(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with id, comment count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ItemFetcher{
			FetchItemFn: func(ctx context.Context, id string) (*hnthread.Item, error) {
				return &hnthread.Item{
					ID:       1,
					Children: []*hnthread.Item{{ID: 2}, {ID: 3}},
				}, nil
			},
		}

		f := hnslog.NewLoggingItemFetcher(inner, logger)
		item, err := f.FetchItem(context.Background(), "1")

		require.NoError(t, err)
		assert.Equal(t, 1, item.ID)
		output := buf.String()
		assert.Contains(t, output, "item fetch")
		assert.Contains(t, output, "id=1")
		assert.Contains(t, output, "comments=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ItemFetcher{
			FetchItemFn: func(ctx context.Context, id string) (*hnthread.Item, error) {
				return nil, errors.New("connection failed")
			},
		}

		f := hnslog.NewLoggingItemFetcher(inner, logger)
		_, err := f.FetchItem(context.Background(), "1")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "item fetch")
		assert.Contains(t, output, "comments=0")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
