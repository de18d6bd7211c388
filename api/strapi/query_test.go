package strapi

import (
	"net/url"
	"testing"
)

func TestQuerySearchOrBuildsPerFieldClauses(t *testing.T) {
	q := NewQuery().
		Paginate(1, 25).
		SearchOr("garcia", "nombre", "apellido")

	values, err := url.ParseQuery(q.Encode())
	if err != nil {
		t.Fatalf("ParseQuery() failed: %v", err)
	}

	want := map[string]string{
		"pagination[page]":                      "1",
		"pagination[pageSize]":                  "25",
		"filters[$or][0][nombre][$containsi]":   "garcia",
		"filters[$or][1][apellido][$containsi]": "garcia",
	}
	for key, val := range want {
		if got := values.Get(key); got != val {
			t.Errorf("param %q = %q, want %q", key, got, val)
		}
	}
}

func TestQueryEmptySearchTermAddsNothing(t *testing.T) {
	q := NewQuery().SearchOr("", "nombre", "apellido")
	if enc := q.Encode(); enc != "" {
		t.Fatalf("Encode() = %q, want empty", enc)
	}
}

func TestQueryFilterEqExpandsDottedPaths(t *testing.T) {
	q := NewQuery().
		FilterEq("club.documentId", "club-1").
		FilterEq("categoria.documentId", "cat-4")

	values, err := url.ParseQuery(q.Encode())
	if err != nil {
		t.Fatalf("ParseQuery() failed: %v", err)
	}

	if got := values.Get("filters[club][documentId][$eq]"); got != "club-1" {
		t.Errorf("club filter = %q, want club-1", got)
	}
	if got := values.Get("filters[categoria][documentId][$eq]"); got != "cat-4" {
		t.Errorf("categoria filter = %q, want cat-4", got)
	}
}

func TestQueryPopulateRepeatsKey(t *testing.T) {
	q := NewQuery().Populate("logo", "categorias").Sort("fechaInicio:desc")

	values, err := url.ParseQuery(q.Encode())
	if err != nil {
		t.Fatalf("ParseQuery() failed: %v", err)
	}

	populate := values["populate"]
	if len(populate) != 2 || populate[0] != "logo" || populate[1] != "categorias" {
		t.Errorf("populate = %v, want [logo categorias]", populate)
	}
	if got := values.Get("sort"); got != "fechaInicio:desc" {
		t.Errorf("sort = %q, want fechaInicio:desc", got)
	}
}
