// Package views holds the screen-side collection state shared by the admin
// and trip screens: a three-valued load status and the reconciliation rules
// that keep an in-memory item set in step with server-side mutations.
package views

import "context"

// Status is the load state of one screen. Exactly one value holds at any
// time.
type Status int

const (
	// StatusLoading: a full load is in flight (also the initial state).
	StatusLoading Status = iota
	// StatusReady: items mirror the last successful load plus any patches.
	StatusReady
	// StatusFailed: the last full load failed; ErrorMessage explains why.
	StatusFailed
)

// List is the collection state of one screen over items of type T, keyed by
// a stable per-collection identifier.
//
// Rules:
//   - a full load replaces the item set wholesale and keeps server order;
//     a failed load lands in StatusFailed even when items were previously
//     loaded (no stale-data fallback);
//   - Patch rewrites exactly one item in place after a successful
//     single-field mutation, with no status transition and no reload;
//   - mutation failures never transition the status; callers surface them
//     as transient alerts and leave the items untouched.
//
// Concurrent mutations are not sequenced: the later response to land wins.
type List[T any] struct {
	status Status
	errMsg string
	items  []T
	id     func(T) int64
}

// NewList builds an empty list in StatusLoading. id must extract the item's
// stable identifier.
func NewList[T any](id func(T) int64) *List[T] {
	return &List[T]{status: StatusLoading, id: id}
}

func (l *List[T]) Status() Status       { return l.status }
func (l *List[T]) ErrorMessage() string { return l.errMsg }

// Items returns the in-memory item set in server order. Valid only in
// StatusReady; otherwise nil.
func (l *List[T]) Items() []T {
	if l.status != StatusReady {
		return nil
	}
	return l.items
}

// Fail transitions to StatusFailed with the given message, discarding any
// previously loaded items.
func (l *List[T]) Fail(msg string) {
	l.status = StatusFailed
	l.errMsg = msg
	l.items = nil
}

// Load runs fetch and replaces the item set with its result. On failure the
// screen lands in StatusFailed with errMsg(err); the error is also returned
// so callers can react to session expiry.
func (l *List[T]) Load(ctx context.Context, fetch func(ctx context.Context) ([]T, error), errMsg func(error) string) error {
	l.status = StatusLoading
	l.errMsg = ""

	items, err := fetch(ctx)
	if err != nil {
		l.Fail(errMsg(err))
		return err
	}

	l.items = items
	l.status = StatusReady
	return nil
}

// Patch applies mutate to the single item with the given identifier,
// leaving length, order and every other element untouched. Returns false
// when the list is not ready or no item matches; the caller treats that as
// a no-op, not an error.
func (l *List[T]) Patch(id int64, mutate func(*T)) bool {
	if l.status != StatusReady {
		return false
	}
	for i := range l.items {
		if l.id(l.items[i]) == id {
			mutate(&l.items[i])
			return true
		}
	}
	return false
}
