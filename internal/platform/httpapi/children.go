package httpapi

import "context"

// ChildrenFunc loads the records owned by ownerID, rendered without the
// back-reference to the owner. Owners cannot import their children's
// packages, so these are wired in at startup.
type ChildrenFunc func(ctx context.Context, ownerID int64) (interface{}, error)

// Many adapts a list result so that no children renders as [] rather than null.
func Many[T any](items []T, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// One adapts a single-record result; an absent record stays a nil interface
// so omitempty and null rendering work.
func One[T any](item *T, found bool, err error) (interface{}, error) {
	if err != nil || !found {
		return nil, err
	}
	return item, nil
}
