package cms

import (
	"context"
	"errors"
)

// ErrNoMoreItems is returned by PageIterator.Next when the result set is
// exhausted.
var ErrNoMoreItems = errors.New("no more items")

// DefaultPageSize is the page size used when none is given.
const DefaultPageSize = 50

// PageFunc fetches one page of results with the given $top and $skip values.
type PageFunc[T any] func(ctx context.Context, top, skip int) (*ListResponse[T], error)

// PageIterator walks a $top/$skip paginated result set item by item, fetching
// pages lazily. It is not safe for concurrent use.
type PageIterator[T any] struct {
	ctx      context.Context
	fetch    PageFunc[T]
	pageSize int
	skip     int
	total    int64
	buffer   []T
	fetched  bool
}

// NewPageIterator creates an iterator over the paginated result set produced
// by fetch. A pageSize of 0 selects DefaultPageSize.
func NewPageIterator[T any](ctx context.Context, fetch PageFunc[T], pageSize int) *PageIterator[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &PageIterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		pageSize: pageSize,
	}
}

// HasNext reports whether another item is available. It is optimistic before
// the first fetch; the first Next call may still report an empty result set.
func (it *PageIterator[T]) HasNext() bool {
	if !it.fetched {
		return true
	}

	return len(it.buffer) > 0 || int64(it.skip) < it.total
}

// Next returns the next item, fetching the next page when the buffer runs
// out. It returns ErrNoMoreItems once the result set is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if len(it.buffer) == 0 {
		if it.fetched && int64(it.skip) >= it.total {
			return zero, ErrNoMoreItems
		}

		page, err := it.fetch(it.ctx, it.pageSize, it.skip)
		if err != nil {
			return zero, err
		}

		it.fetched = true
		it.total = page.Total
		it.skip += len(page.Items)
		it.buffer = page.Items

		if len(it.buffer) == 0 {
			return zero, ErrNoMoreItems
		}
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// FetchAll collects every item of a paginated result set. Listing endpoints
// cap $top server-side, so large result sets are fetched page by page.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T], pageSize int) ([]T, error) {
	iterator := NewPageIterator(ctx, fetch, pageSize)

	var items []T

	for iterator.HasNext() {
		item, err := iterator.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
