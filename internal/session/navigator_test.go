package session

import (
	"testing"

	"padelbot/domain/club"
	"padelbot/domain/validation"
)

func TestNavigatorStartsAtHome(t *testing.T) {
	n := NewNavigator()
	if n.View() != ViewHome {
		t.Fatalf("view = %s, want home", n.View())
	}
	if n.SelectedClub() != nil || n.SelectedCategory() != nil {
		t.Fatal("fresh navigator must have no selections")
	}
}

func TestNavigatorClubAndCategoryFlow(t *testing.T) {
	n := NewNavigator()
	c := &club.Club{ID: "c1", Name: "Padel Center"}
	cat := &club.Category{ID: "k1", Name: "4ta"}

	n.SelectClub(c)
	if n.View() != ViewCategories {
		t.Fatalf("after SelectClub view = %s, want categories", n.View())
	}
	if n.SelectedClub() != c {
		t.Fatal("club not selected")
	}

	if err := n.SelectCategory(cat); err != nil {
		t.Fatalf("SelectCategory() failed: %v", err)
	}
	if n.View() != ViewInternalRanking {
		t.Fatalf("after SelectCategory view = %s, want internalRanking", n.View())
	}
	if n.SelectedCategory() != cat {
		t.Fatal("category not selected")
	}

	if err := n.Back(); err != nil {
		t.Fatalf("Back() failed: %v", err)
	}
	if n.View() != ViewCategories {
		t.Fatalf("after Back view = %s, want categories", n.View())
	}
	if n.SelectedClub() != c {
		t.Fatal("Back must keep the club")
	}
	if n.SelectedCategory() != nil {
		t.Fatal("Back must clear the category")
	}
}

func TestNavigatorSelectClubClearsPreviousCategory(t *testing.T) {
	n := NewNavigator()
	n.SelectClub(&club.Club{ID: "c1"})
	if err := n.SelectCategory(&club.Category{ID: "k1"}); err != nil {
		t.Fatalf("SelectCategory() failed: %v", err)
	}

	other := &club.Club{ID: "c2"}
	n.SelectClub(other)
	if n.SelectedClub() != other {
		t.Fatal("club not replaced")
	}
	if n.SelectedCategory() != nil {
		t.Fatal("switching club must clear the category")
	}
}

func TestNavigatorSelectCategoryGuards(t *testing.T) {
	cat := &club.Category{ID: "k1"}

	// Not on the categories screen.
	n := NewNavigator()
	if err := n.SelectCategory(cat); !validation.Is(err) {
		t.Fatalf("SelectCategory from home: err = %v, want validation error", err)
	}
	if n.View() != ViewHome {
		t.Fatal("failed transition must not change the view")
	}

	// Tournaments screen is not a valid origin either.
	n.OpenTournaments()
	if err := n.SelectCategory(cat); !validation.Is(err) {
		t.Fatalf("SelectCategory from tournaments: err = %v, want validation error", err)
	}
}

func TestNavigatorGoHomeClearsEverything(t *testing.T) {
	n := NewNavigator()
	n.SelectClub(&club.Club{ID: "c1"})
	if err := n.SelectCategory(&club.Category{ID: "k1"}); err != nil {
		t.Fatalf("SelectCategory() failed: %v", err)
	}

	n.GoHome()
	if n.View() != ViewHome {
		t.Fatalf("view = %s, want home", n.View())
	}
	if n.SelectedClub() != nil || n.SelectedCategory() != nil {
		t.Fatal("GoHome must clear both selections")
	}
}

func TestNavigatorOpenTournamentsClearsSelections(t *testing.T) {
	n := NewNavigator()
	n.SelectClub(&club.Club{ID: "c1"})

	n.OpenTournaments()
	if n.View() != ViewTournaments {
		t.Fatalf("view = %s, want tournaments", n.View())
	}
	if n.SelectedClub() != nil {
		t.Fatal("OpenTournaments must clear the club")
	}
}

func TestNavigatorBackOnlyFromInternalRanking(t *testing.T) {
	for _, setup := range []func(*Navigator){
		func(n *Navigator) {},
		func(n *Navigator) { n.SelectClub(&club.Club{ID: "c1"}) },
		func(n *Navigator) { n.OpenTournaments() },
	} {
		n := NewNavigator()
		setup(n)
		if err := n.Back(); !validation.Is(err) {
			t.Fatalf("Back from %s: err = %v, want validation error", n.View(), err)
		}
	}
}

func TestNavigatorRenderingRules(t *testing.T) {
	n := NewNavigator()

	if !n.ShowsGlobalRanking() || n.ShowsClubList() || n.ShowsInternalRanking() || n.ShowsTournaments() {
		t.Fatal("home must show only the global ranking")
	}

	n.SelectClub(&club.Club{ID: "c1"})
	if !n.ShowsGlobalRanking() || !n.ShowsClubList() || n.ShowsInternalRanking() {
		t.Fatal("categories must show the global ranking and the club list")
	}

	if err := n.SelectCategory(&club.Category{ID: "k1"}); err != nil {
		t.Fatalf("SelectCategory() failed: %v", err)
	}
	if n.ShowsGlobalRanking() || !n.ShowsClubList() || !n.ShowsInternalRanking() {
		t.Fatal("internal ranking must show the club list and the internal ranking")
	}

	n.OpenTournaments()
	if n.ShowsGlobalRanking() || n.ShowsClubList() || !n.ShowsTournaments() {
		t.Fatal("tournaments must show only the tournament list")
	}
}
