// Package store holds the client-side async-state containers that keep
// remote collection data consistent with user navigation.
package store

import (
	"context"
	"sync"

	"padelbot/domain/paging"
	"padelbot/domain/validation"
)

// Status is the request lifecycle of a store.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Request is what a fetch sees: the page window plus the current search
// term and discrete filters, captured atomically when the fetch starts.
type Request struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
}

// Fetcher loads one page of a collection.
type Fetcher[T any] func(ctx context.Context, req Request) ([]T, paging.Info, error)

// Snapshot is an immutable view of a store, handed to subscribers.
type Snapshot[T any] struct {
	Status    Status
	Items     []T
	Page      int
	PageCount int
	Total     int
	Search    string
	Filters   map[string]string
	Err       string
}

// Collection is a generic async collection container: request lifecycle
// idle → pending → {succeeded, failed}, re-entrant. A success replaces the
// held collection and pagination atomically; a failure clears it to empty
// with pageCount 1, so no stale data survives an error.
//
// Fetches are fenced with a monotonic sequence number: only the most
// recently initiated request's result is applied, racing older responses
// are discarded.
type Collection[T any] struct {
	mu       sync.Mutex
	fetch    Fetcher[T]
	pageSize int

	status    Status
	items     []T
	page      int
	pageCount int
	total     int
	search    string
	filters   map[string]string
	errMsg    string

	seq       uint64
	listeners []func(Snapshot[T])
}

// NewCollection creates an idle store around a fetcher.
func NewCollection[T any](fetch Fetcher[T], pageSize int) *Collection[T] {
	return &Collection[T]{
		fetch:     fetch,
		pageSize:  pageSize,
		status:    StatusIdle,
		page:      1,
		pageCount: 1,
		filters:   map[string]string{},
	}
}

// Subscribe registers a listener invoked with a snapshot on every state
// change. Listeners run outside the store lock.
func (c *Collection[T]) Subscribe(fn func(Snapshot[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Snapshot returns the current state.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SetSearch replaces the search term. Any change resets the page to 1: the
// old page position is meaningless under a new term.
func (c *Collection[T]) SetSearch(term string) {
	c.mu.Lock()
	if term == c.search {
		c.mu.Unlock()
		return
	}
	c.search = term
	c.page = 1
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// SetFilters merges the partial filter set into the current one. An empty
// value removes the filter. Any effective change resets the page to 1.
func (c *Collection[T]) SetFilters(partial map[string]string) {
	c.mu.Lock()
	changed := false
	for k, v := range partial {
		if v == "" {
			if _, ok := c.filters[k]; ok {
				delete(c.filters, k)
				changed = true
			}
			continue
		}
		if c.filters[k] != v {
			c.filters[k] = v
			changed = true
		}
	}
	if !changed {
		c.mu.Unlock()
		return
	}
	c.page = 1
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// SetPage moves to page n. n must lie within [1, pageCount].
func (c *Collection[T]) SetPage(n int) error {
	c.mu.Lock()
	if n < 1 || n > c.pageCount {
		max := c.pageCount
		c.mu.Unlock()
		return validation.Errorf("página %d fuera de rango [1, %d]", n, max)
	}
	if n == c.page {
		c.mu.Unlock()
		return nil
	}
	c.page = n
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
	return nil
}

// Fetch loads the current page with the current search term and filters.
// The store turns pending immediately; the result is applied only if no
// newer fetch was initiated in the meantime. Returns the fetch error, if
// any, even when the result was fenced out.
func (c *Collection[T]) Fetch(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	id := c.seq
	c.status = StatusPending
	c.errMsg = ""
	req := Request{
		Page:     c.page,
		PageSize: c.pageSize,
		Search:   c.search,
		Filters:  copyFilters(c.filters),
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	items, info, err := c.fetch(ctx, req)

	c.mu.Lock()
	if id != c.seq {
		// A newer fetch was initiated; this result is stale.
		c.mu.Unlock()
		return err
	}
	if err != nil {
		c.status = StatusFailed
		c.items = nil
		c.page = 1
		c.pageCount = 1
		c.total = 0
		c.errMsg = err.Error()
	} else {
		c.status = StatusSucceeded
		c.items = items
		if info.Page > 0 {
			c.page = info.Page
		}
		c.pageCount = info.PageCount
		if c.pageCount < 1 {
			c.pageCount = 1
		}
		c.total = info.Total
	}
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
	return err
}

func (c *Collection[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		Status:    c.status,
		Items:     items,
		Page:      c.page,
		PageCount: c.pageCount,
		Total:     c.total,
		Search:    c.search,
		Filters:   copyFilters(c.filters),
		Err:       c.errMsg,
	}
}

func (c *Collection[T]) notify(snap Snapshot[T]) {
	c.mu.Lock()
	listeners := make([]func(Snapshot[T]), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
}

func copyFilters(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
