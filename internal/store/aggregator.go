package store

import (
	"context"
	"log/slog"
	"sync"

	"padelbot/domain/ranking"
)

// GlobalRankingSnapshot is an immutable view of the global ranking store.
type GlobalRankingSnapshot struct {
	Status     Status
	Categories []*ranking.Category
	Err        string
}

// GlobalRanking aggregates the global ranking in two phases: one index
// fetch, then one detail fetch per category, all run concurrently. It waits
// for every detail call to settle and tolerates individual failures: a
// failed category is logged and skipped, the rest survive.
//
// Once succeeded, a new Fetch is a background refresh: the store does not
// flip back to pending, so valid data is never hidden behind a loading
// state.
type GlobalRanking struct {
	mu   sync.Mutex
	repo ranking.Repository
	log  *slog.Logger

	status     Status
	categories []*ranking.Category
	errMsg     string

	seq       uint64
	listeners []func(GlobalRankingSnapshot)
}

// NewGlobalRanking creates an idle global ranking store.
func NewGlobalRanking(repo ranking.Repository) *GlobalRanking {
	return &GlobalRanking{
		repo:   repo,
		log:    slog.Default(),
		status: StatusIdle,
	}
}

// Subscribe registers a listener invoked on every state change.
func (g *GlobalRanking) Subscribe(fn func(GlobalRankingSnapshot)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, fn)
}

// Snapshot returns the current state.
func (g *GlobalRanking) Snapshot() GlobalRankingSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Fetch loads the full global ranking and replaces prior state wholesale
// on success. Fenced like Collection.Fetch: only the latest initiated
// request's result is applied.
func (g *GlobalRanking) Fetch(ctx context.Context) error {
	g.mu.Lock()
	g.seq++
	id := g.seq
	if g.status != StatusSucceeded {
		g.status = StatusPending
		g.errMsg = ""
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)

	refs, err := g.repo.GlobalCategories(ctx)
	if err != nil {
		g.mu.Lock()
		if id != g.seq {
			g.mu.Unlock()
			return err
		}
		g.status = StatusFailed
		g.categories = nil
		g.errMsg = err.Error()
		snap = g.snapshotLocked()
		g.mu.Unlock()
		g.notify(snap)
		return err
	}

	results := make([]*ranking.Category, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref ranking.CategoryRef) {
			defer wg.Done()
			cat, err := g.repo.GlobalCategoryEntries(ctx, ref.ID)
			if err != nil {
				g.log.Warn("global ranking category fetch failed",
					"category", ref.Name, "error", err)
				return
			}
			cat.Entries = ranking.DedupeEntries(cat.Entries)
			ranking.SortEntries(cat.Entries)
			results[i] = cat
		}(i, ref)
	}
	wg.Wait()

	merged := make([]*ranking.Category, 0, len(results))
	for _, cat := range results {
		if cat != nil {
			merged = append(merged, cat)
		}
	}
	ranking.OrderCategories(merged)

	g.mu.Lock()
	if id != g.seq {
		g.mu.Unlock()
		return nil
	}
	g.status = StatusSucceeded
	g.categories = merged
	g.errMsg = ""
	snap = g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
	return nil
}

func (g *GlobalRanking) snapshotLocked() GlobalRankingSnapshot {
	cats := make([]*ranking.Category, len(g.categories))
	copy(cats, g.categories)
	return GlobalRankingSnapshot{
		Status:     g.status,
		Categories: cats,
		Err:        g.errMsg,
	}
}

func (g *GlobalRanking) notify(snap GlobalRankingSnapshot) {
	g.mu.Lock()
	listeners := make([]func(GlobalRankingSnapshot), len(g.listeners))
	copy(listeners, g.listeners)
	g.mu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
}
