package ranking

import "testing"

func TestSortEntries(t *testing.T) {
	entries := []Entry{
		{PlayerID: "c", Score: 10},
		{PlayerID: "a", Score: 30},
		{PlayerID: "b", Score: 30},
		{PlayerID: "d", Score: 20},
	}
	SortEntries(entries)

	want := []string{"a", "b", "d", "c"}
	for i, id := range want {
		if entries[i].PlayerID != id {
			t.Fatalf("entries[%d] = %s, want %s", i, entries[i].PlayerID, id)
		}
	}
}

func TestDedupeEntriesKeepsFirstOccurrence(t *testing.T) {
	entries := []Entry{
		{PlayerID: "a", Score: 10},
		{PlayerID: "b", Score: 20},
		{PlayerID: "a", Score: 99},
	}
	out := DedupeEntries(entries)

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].PlayerID != "a" || out[0].Score != 10 {
		t.Errorf("out[0] = %+v, want first occurrence of a", out[0])
	}
	if out[1].PlayerID != "b" {
		t.Errorf("out[1] = %+v, want b", out[1])
	}
}

func TestOrderCategories(t *testing.T) {
	cats := []*Category{
		{Name: "Damas"},
		{Name: "Mixta B"},
		{Name: "4ta"},
		{Name: "Mixta A"},
		{Name: "6ta"},
	}
	OrderCategories(cats)

	want := []string{"4ta", "6ta", "Damas", "Mixta B", "Mixta A"}
	for i, name := range want {
		if cats[i].Name != name {
			t.Fatalf("cats[%d] = %s, want %s (full order: %v)", i, cats[i].Name, name, names(cats))
		}
	}
}

func names(cats []*Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}
