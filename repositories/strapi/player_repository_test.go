package strapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	api "padelbot/api/strapi"
	"padelbot/domain/player"
)

const searchPage = `{
	"data": [
		{"documentId": "p1", "nombre": "Ana", "apellido": "García", "genero": "Femenino", "ranking": 120},
		{"documentId": "p2", "nombre": "Juan", "apellido": "Garcia", "genero": "Masculino", "ranking": 95}
	],
	"meta": {"pagination": {"page": 2, "pageSize": 25, "pageCount": 4, "total": 87}}
}`

func TestPlayerSearchQueryAndPaging(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/jugadors" {
			t.Errorf("path = %s, want /api/jugadors", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	repo := NewPlayerRepository(api.NewClient(srv.URL))
	filters := player.SearchFilters{Gender: "Femenino", CategoryID: "cat4"}
	players, info, err := repo.Search(context.Background(), "garcia", filters, 2, 25)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	// The term searches name and surname case-insensitively, as one $or.
	if got := gotQuery.Get("filters[$or][0][nombre][$containsi]"); got != "garcia" {
		t.Errorf("nombre clause = %q, want garcia", got)
	}
	if got := gotQuery.Get("filters[$or][1][apellido][$containsi]"); got != "garcia" {
		t.Errorf("apellido clause = %q, want garcia", got)
	}
	if got := gotQuery.Get("filters[genero][$eq]"); got != "Femenino" {
		t.Errorf("gender filter = %q, want Femenino", got)
	}
	if got := gotQuery.Get("filters[categoria][documentId][$eq]"); got != "cat4" {
		t.Errorf("category filter = %q, want cat4", got)
	}
	if got := gotQuery.Get("pagination[page]"); got != "2" {
		t.Errorf("page = %q, want 2", got)
	}
	if got := gotQuery.Get("pagination[pageSize]"); got != "25" {
		t.Errorf("pageSize = %q, want 25", got)
	}
	if got := gotQuery.Get("sort"); got != "ranking:desc" {
		t.Errorf("sort = %q, want ranking:desc", got)
	}

	if len(players) != 2 {
		t.Fatalf("players = %d, want 2", len(players))
	}
	if players[0].ID != "p1" || players[0].FullName() != "Ana García" {
		t.Errorf("players[0] = %+v", players[0])
	}
	if info.Page != 2 || info.PageCount != 4 || info.Total != 87 {
		t.Errorf("paging = %+v, want page 2 of 4, total 87", info)
	}
}

func TestPlayerSearchWithoutTermHasNoOrFilter(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [], "meta": {"pagination": {"page": 1, "pageSize": 25, "pageCount": 1, "total": 0}}}`))
	}))
	defer srv.Close()

	repo := NewPlayerRepository(api.NewClient(srv.URL))
	if _, _, err := repo.Search(context.Background(), "", player.SearchFilters{}, 1, 25); err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	for key := range gotQuery {
		if len(key) >= 12 && key[:12] == "filters[$or]" {
			t.Fatalf("empty term must not emit $or clauses, got %s", key)
		}
	}
}

func TestPlayerGetMapsPairingSlots(t *testing.T) {
	const detail = `{
		"data": {
			"documentId": "p1", "nombre": "Ana", "apellido": "García",
			"estadisticas": {"partidosJugados": 12, "partidosGanados": 8, "torneosJugados": 3, "torneosGanados": 1},
			"parejaDrive": {
				"documentId": "pair9",
				"drive": {"documentId": "p1", "nombre": "Ana", "apellido": "García"},
				"reves": {"documentId": "p7", "nombre": "Sol", "apellido": "Pérez"}
			}
		},
		"meta": {}
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/jugadors/p1" {
			t.Errorf("path = %s, want /api/jugadors/p1", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(detail))
	}))
	defer srv.Close()

	repo := NewPlayerRepository(api.NewClient(srv.URL))
	p, err := repo.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	if p.Stats.MatchesPlayed != 12 || p.Stats.MatchesWon != 8 {
		t.Errorf("stats = %+v", p.Stats)
	}
	if p.Drive == nil {
		t.Fatal("drive slot not mapped")
	}
	if p.Drive.PairingID != "pair9" || p.Drive.PartnerID != "p7" {
		t.Errorf("drive slot = %+v, want partner p7 from pair9", p.Drive)
	}
	if p.Back != nil {
		t.Errorf("back slot = %+v, want nil", p.Back)
	}
}
