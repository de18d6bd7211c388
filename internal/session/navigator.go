// Package session holds the per-chat view-navigation state machine and the
// collection stores each chat works with.
package session

import (
	"padelbot/domain/club"
	"padelbot/domain/validation"
)

// View is one of the mutually exclusive screens.
type View string

const (
	ViewHome            View = "home"
	ViewCategories      View = "categories"
	ViewInternalRanking View = "internalRanking"
	ViewTournaments     View = "tournaments"
)

// Navigator selects which screen is visible and carries the selected-club /
// selected-category context child views need. It holds no server data, only
// references. Initial state is home; there is no terminal state.
//
// The selected category is only meaningful while a club is selected:
// whenever the club is cleared, the category is cleared with it.
type Navigator struct {
	view             View
	selectedClub     *club.Club
	selectedCategory *club.Category
}

// NewNavigator starts at home with nothing selected.
func NewNavigator() *Navigator {
	return &Navigator{view: ViewHome}
}

// View returns the current screen.
func (n *Navigator) View() View { return n.view }

// SelectedClub returns the selected club, or nil.
func (n *Navigator) SelectedClub() *club.Club { return n.selectedClub }

// SelectedCategory returns the selected category, or nil.
func (n *Navigator) SelectedCategory() *club.Category { return n.selectedCategory }

// SelectClub moves to the categories screen from any state, selecting the
// club and clearing any previous category selection.
func (n *Navigator) SelectClub(c *club.Club) {
	n.view = ViewCategories
	n.selectedClub = c
	n.selectedCategory = nil
}

// SelectCategory moves to the internal ranking screen. Only reachable from
// the categories screen, and requires a selected club.
func (n *Navigator) SelectCategory(cat *club.Category) error {
	if n.view != ViewCategories {
		return validation.Errorf("elegí primero un club")
	}
	if n.selectedClub == nil {
		return validation.Errorf("no hay club seleccionado")
	}
	n.view = ViewInternalRanking
	n.selectedCategory = cat
	return nil
}

// OpenTournaments moves to the tournaments screen from any state, clearing
// both selections.
func (n *Navigator) OpenTournaments() {
	n.view = ViewTournaments
	n.selectedClub = nil
	n.selectedCategory = nil
}

// GoHome returns to home from any state, clearing both selections.
func (n *Navigator) GoHome() {
	n.view = ViewHome
	n.selectedClub = nil
	n.selectedCategory = nil
}

// Back steps from the internal ranking back to the categories screen,
// keeping the club but clearing the category.
func (n *Navigator) Back() error {
	if n.view != ViewInternalRanking {
		return validation.Errorf("no hay vista anterior")
	}
	n.view = ViewCategories
	n.selectedCategory = nil
	return nil
}

// Rendering rules: which sections each screen shows.

// ShowsGlobalRanking reports whether the global ranking is visible.
func (n *Navigator) ShowsGlobalRanking() bool {
	return n.view == ViewHome || n.view == ViewCategories
}

// ShowsClubList reports whether the club list is visible.
func (n *Navigator) ShowsClubList() bool {
	return n.view == ViewCategories || n.view == ViewInternalRanking
}

// ShowsInternalRanking reports whether the internal ranking is visible.
func (n *Navigator) ShowsInternalRanking() bool {
	return n.view == ViewInternalRanking
}

// ShowsTournaments reports whether the tournament list is visible.
func (n *Navigator) ShowsTournaments() bool {
	return n.view == ViewTournaments
}
