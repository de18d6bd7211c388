package ranking

import "sort"

// categoryPriority fixes the display order of the global ranking
// categories. Names absent from the table sort after all known ones,
// keeping their original order.
var categoryPriority = map[string]int{
	"4ta":   0,
	"5ta":   1,
	"6ta":   2,
	"7ta":   3,
	"8va":   4,
	"Damas": 5,
}

// SortEntries orders entries by score descending. Equal scores break the
// tie by player id ascending, so the order is deterministic across
// refetches regardless of backend arrival order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
}

// DedupeEntries drops repeated rows for the same player, keeping the first
// occurrence. Entries within a category are unique per player.
func DedupeEntries(entries []Entry) []Entry {
	seen := make(map[string]bool, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if seen[e.PlayerID] {
			continue
		}
		seen[e.PlayerID] = true
		out = append(out, e)
	}
	return out
}

// OrderCategories sorts categories by the fixed priority table. Unknown
// names go after all known ones, in their original order.
func OrderCategories(cats []*Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		pi, iKnown := categoryPriority[cats[i].Name]
		pj, jKnown := categoryPriority[cats[j].Name]
		switch {
		case iKnown && jKnown:
			return pi < pj
		case iKnown:
			return true
		default:
			return false
		}
	})
}
