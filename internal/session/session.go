package session

import (
	"context"
	"sync"

	"padelbot/domain/club"
	"padelbot/domain/paging"
	"padelbot/domain/player"
	"padelbot/domain/ranking"
	"padelbot/domain/tournament"
	"padelbot/internal/store"
)

// Deps are the domain services the per-chat stores fetch through. The
// global ranking store is shared across chats: the ranking is the same for
// everyone and its background-refresh semantics keep it warm.
type Deps struct {
	Clubs         *club.Service
	Players       *player.Service
	Tournaments   *tournament.Service
	Ranking       ranking.Repository
	GlobalRanking *store.GlobalRanking
}

// Session is the state of one chat: its navigator plus its own collection
// stores, so search terms and page positions never leak between chats.
type Session struct {
	ChatID int64
	Nav    *Navigator

	Clubs           *store.Collection[*club.Club]
	Players         *store.Collection[*player.Player]
	Tournaments     *store.Collection[*tournament.Tournament]
	InternalRanking *store.Collection[ranking.Entry]
	GlobalRanking   *store.GlobalRanking
}

// Filter keys understood by the per-chat stores.
const (
	FilterClub       = "club"
	FilterCategory   = "categoria"
	FilterGender     = "genero"
	FilterCategoryID = "categoriaId"
)

func newSession(chatID int64, d Deps) *Session {
	clubs := store.NewCollection(func(ctx context.Context, _ store.Request) ([]*club.Club, paging.Info, error) {
		items, err := d.Clubs.ListClubs(ctx)
		if err != nil {
			return nil, paging.Info{}, err
		}
		return items, paging.Info{Page: 1, PageSize: len(items), PageCount: 1, Total: len(items)}, nil
	}, 0)

	players := store.NewCollection(func(ctx context.Context, req store.Request) ([]*player.Player, paging.Info, error) {
		f := player.SearchFilters{
			Gender:     req.Filters[FilterGender],
			CategoryID: req.Filters[FilterCategoryID],
		}
		return d.Players.Search(ctx, req.Search, f, req.Page)
	}, player.DefaultPageSize)

	tournaments := store.NewCollection(func(ctx context.Context, req store.Request) ([]*tournament.Tournament, paging.Info, error) {
		return d.Tournaments.List(ctx, req.Page)
	}, tournament.DefaultPageSize)

	internal := store.NewCollection(func(ctx context.Context, req store.Request) ([]ranking.Entry, paging.Info, error) {
		cat, err := d.Ranking.ClubRanking(ctx, req.Filters[FilterClub], req.Filters[FilterCategory])
		if err != nil {
			return nil, paging.Info{}, err
		}
		entries := ranking.DedupeEntries(cat.Entries)
		ranking.SortEntries(entries)
		info := paging.Info{Page: 1, PageSize: len(entries), PageCount: 1, Total: len(entries)}
		return entries, info, nil
	}, 0)

	return &Session{
		ChatID:          chatID,
		Nav:             NewNavigator(),
		Clubs:           clubs,
		Players:         players,
		Tournaments:     tournaments,
		InternalRanking: internal,
		GlobalRanking:   d.GlobalRanking,
	}
}

// Manager hands out one session per chat, creating it on first use.
type Manager struct {
	mu       sync.Mutex
	deps     Deps
	sessions map[int64]*Session
}

// NewManager creates an empty session manager.
func NewManager(deps Deps) *Manager {
	return &Manager{deps: deps, sessions: make(map[int64]*Session)}
}

// Get returns the chat's session, creating it if needed.
func (m *Manager) Get(chatID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[chatID]
	if !ok {
		s = newSession(chatID, m.deps)
		m.sessions[chatID] = s
	}
	return s
}
