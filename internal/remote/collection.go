package remote

import "context"

// Collection is a Loader over a list. Its data is never nil.
type Collection[Q, T any] struct {
	*Loader[Q, []T]
}

// NewCollection builds a Collection around fetch.
func NewCollection[Q, T any](fetch Fetcher[Q, []T], opts Options) *Collection[Q, T] {
	l := NewLoader(fetch, opts)
	l.normalize = func(items []T) []T {
		if items == nil {
			return []T{}
		}
		return items
	}
	l.data = []T{}
	return &Collection[Q, T]{Loader: l}
}

// View returns the stored items matching pred. A nil pred returns a copy of all items.
func (c *Collection[Q, T]) View(pred func(T) bool) []T {
	items := c.Data()
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred == nil || pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len reports how many items are stored.
func (c *Collection[Q, T]) Len() int {
	return len(c.Data())
}

// Static returns a fetcher that ignores the query, for pages whose data has no
// dependencies.
func Static[T any](fetch func(context.Context) (T, error)) Fetcher[struct{}, T] {
	return func(ctx context.Context, _ struct{}) (T, error) {
		return fetch(ctx)
	}
}
