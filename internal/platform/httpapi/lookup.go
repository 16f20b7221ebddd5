package httpapi

import "context"

// FetchFunc loads a parent record by id; found=false means absent.
type FetchFunc[T any] func(ctx context.Context, id int64) (*T, bool, error)

// Lookup resolves parent references while one response is being built,
// fetching each id at most once.
type Lookup[T any] struct {
	fetch FetchFunc[T]
	seen  map[int64]*T
}

func NewLookup[T any](fetch FetchFunc[T]) *Lookup[T] {
	return &Lookup[T]{fetch: fetch, seen: make(map[int64]*T)}
}

// Get returns the record for id, or nil when id is zero or absent.
func (l *Lookup[T]) Get(ctx context.Context, id int64) (*T, error) {
	if id == 0 || l.fetch == nil {
		return nil, nil
	}
	if v, ok := l.seen[id]; ok {
		return v, nil
	}
	v, found, err := l.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		v = nil
	}
	l.seen[id] = v
	return v, nil
}
