package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"padelbot/domain/paging"
)

func pageFetcher(items []string, info paging.Info, err error) Fetcher[string] {
	return func(ctx context.Context, req Request) ([]string, paging.Info, error) {
		return items, info, err
	}
}

func TestCollectionLifecycle(t *testing.T) {
	c := NewCollection(pageFetcher(
		[]string{"a", "b"},
		paging.Info{Page: 1, PageSize: 25, PageCount: 3, Total: 70},
		nil,
	), 25)

	if got := c.Snapshot().Status; got != StatusIdle {
		t.Fatalf("initial status = %s, want idle", got)
	}

	var statuses []Status
	c.Subscribe(func(s Snapshot[string]) { statuses = append(statuses, s.Status) })

	if err := c.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}

	snap := c.Snapshot()
	if snap.Status != StatusSucceeded {
		t.Errorf("status = %s, want succeeded", snap.Status)
	}
	if len(snap.Items) != 2 || snap.PageCount != 3 || snap.Total != 70 {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(statuses) != 2 || statuses[0] != StatusPending || statuses[1] != StatusSucceeded {
		t.Errorf("observed statuses = %v, want [pending succeeded]", statuses)
	}
}

func TestCollectionFailureClearsToSafeEmpty(t *testing.T) {
	fail := errors.New("boom")
	items := []string{"a"}
	var err error
	c := NewCollection(func(ctx context.Context, req Request) ([]string, paging.Info, error) {
		return items, paging.Info{Page: 1, PageCount: 5, Total: 100}, err
	}, 25)

	if fetchErr := c.Fetch(context.Background()); fetchErr != nil {
		t.Fatalf("first Fetch() failed: %v", fetchErr)
	}
	if err := c.SetPage(3); err != nil {
		t.Fatalf("SetPage(3) failed: %v", err)
	}

	err = fail
	if fetchErr := c.Fetch(context.Background()); fetchErr == nil {
		t.Fatal("second Fetch() should fail")
	}

	snap := c.Snapshot()
	if snap.Status != StatusFailed {
		t.Errorf("status = %s, want failed", snap.Status)
	}
	if len(snap.Items) != 0 {
		t.Errorf("items = %v, want empty after failure", snap.Items)
	}
	if snap.PageCount != 1 || snap.Page != 1 {
		t.Errorf("page/pageCount = %d/%d, want 1/1", snap.Page, snap.PageCount)
	}
	if snap.Err == "" {
		t.Error("error message should be set")
	}
}

func TestCollectionIsReentrantAfterFailure(t *testing.T) {
	var err error = errors.New("boom")
	c := NewCollection(func(ctx context.Context, req Request) ([]string, paging.Info, error) {
		return []string{"ok"}, paging.Info{Page: 1, PageCount: 1, Total: 1}, err
	}, 25)

	c.Fetch(context.Background())
	err = nil
	if fetchErr := c.Fetch(context.Background()); fetchErr != nil {
		t.Fatalf("re-fetch failed: %v", fetchErr)
	}
	if got := c.Snapshot().Status; got != StatusSucceeded {
		t.Fatalf("status = %s, want succeeded", got)
	}
}

func TestSearchAndFilterChangesResetPage(t *testing.T) {
	c := NewCollection(pageFetcher(nil, paging.Info{Page: 1, PageCount: 4}, nil), 25)
	c.Fetch(context.Background())

	if err := c.SetPage(3); err != nil {
		t.Fatalf("SetPage(3) failed: %v", err)
	}
	c.SetSearch("garcia")
	if got := c.Snapshot().Page; got != 1 {
		t.Errorf("page after SetSearch = %d, want 1", got)
	}

	c.Fetch(context.Background())
	if err := c.SetPage(2); err != nil {
		t.Fatalf("SetPage(2) failed: %v", err)
	}
	c.SetFilters(map[string]string{"genero": "Femenino"})
	if got := c.Snapshot().Page; got != 1 {
		t.Errorf("page after SetFilters = %d, want 1", got)
	}

	// Re-applying the same term or filters is not a change.
	c.Fetch(context.Background())
	c.SetPage(2)
	c.SetSearch("garcia")
	c.SetFilters(map[string]string{"genero": "Femenino"})
	if got := c.Snapshot().Page; got != 2 {
		t.Errorf("page after no-op mutations = %d, want 2", got)
	}
}

func TestSetPageBounds(t *testing.T) {
	c := NewCollection(pageFetcher(nil, paging.Info{Page: 1, PageCount: 3}, nil), 25)
	c.Fetch(context.Background())

	tests := []struct {
		page    int
		wantErr bool
	}{
		{page: 0, wantErr: true},
		{page: 1, wantErr: false},
		{page: 2, wantErr: false},
		{page: 3, wantErr: false},
		{page: 4, wantErr: true},
	}
	for _, tt := range tests {
		err := c.SetPage(tt.page)
		if (err != nil) != tt.wantErr {
			t.Errorf("SetPage(%d) error = %v, wantErr %v", tt.page, err, tt.wantErr)
		}
	}
}

func TestStaleFetchResultIsDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, req Request) ([]string, paging.Info, error) {
		if req.Search == "slow" {
			close(entered)
			<-release
			return []string{"stale"}, paging.Info{Page: 1, PageCount: 1, Total: 1}, nil
		}
		return []string{"fresh"}, paging.Info{Page: 1, PageCount: 1, Total: 1}, nil
	}
	c := NewCollection(fetch, 25)

	c.SetSearch("slow")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Fetch(context.Background())
	}()
	<-entered

	// A newer fetch starts while the first is still in flight.
	c.SetSearch("fresh")
	if err := c.Fetch(context.Background()); err != nil {
		t.Fatalf("fresh Fetch() failed: %v", err)
	}

	close(release)
	wg.Wait()

	snap := c.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0] != "fresh" {
		t.Fatalf("items = %v, want the newer request's result", snap.Items)
	}
	if snap.Status != StatusSucceeded {
		t.Fatalf("status = %s, want succeeded", snap.Status)
	}
}
