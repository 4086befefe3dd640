package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/hnthread"
	main "github.com/fwojciec/hnthread/cmd/hnthread"
	"github.com/fwojciec/hnthread/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints children of the fetched item as comments", func(t *testing.T) {
		t.Parallel()

		// Given: a fetcher returning a story with a nested reply
		var gotID string
		fetcher := &mock.ItemFetcher{
			FetchItemFn: func(_ context.Context, id string) (*hnthread.Item, error) {
				gotID = id
				return &hnthread.Item{
					ID: 1, Author: "a", Text: strPtr("<i>hi</i>"),
					Children: []*hnthread.Item{
						{ID: 2, Author: "b", Text: strPtr("<u>yo</u>"), Children: []*hnthread.Item{
							{ID: 3, Author: "c", Text: strPtr("<p>deep &amp; nested</p>")},
						}},
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Fetcher:    fetcher,
			Normalizer: &hnthread.Normalizer{},
		}

		// When: running against an API url
		err := (&main.FetchCmd{Ref: "https://hn.algolia.com/api/v1/items/1"}).Run(deps)

		// Then: only the children are printed, stripped of markup
		require.NoError(t, err)
		assert.Equal(t, "1", gotID)
		assert.JSONEq(t, `{"id":1,"author":"a","comments":[
			{"id":2,"author":"b","text":"yo","children":[
				{"id":3,"author":"c","text":"deep &amp; nested"}
			]}
		]}`, stdout.String())
	})

	t.Run("writes nothing when fetching fails", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.ItemFetcher{
			FetchItemFn: func(_ context.Context, id string) (*hnthread.Item, error) {
				return nil, errors.New("connection refused")
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Fetcher: fetcher,
		}

		err := (&main.FetchCmd{Ref: "1"}).Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects items without an id", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.ItemFetcher{
			FetchItemFn: func(_ context.Context, id string) (*hnthread.Item, error) {
				return &hnthread.Item{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Fetcher: fetcher,
		}

		err := (&main.FetchCmd{Ref: "1"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, hnthread.EINVALID, hnthread.ErrorCode(err))
		assert.Empty(t, stdout.String())
	})
}
