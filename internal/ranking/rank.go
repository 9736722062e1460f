package ranking

import (
	"sort"

	"github.com/jonathan/style-assistant/internal/randutil"
	"github.com/jonathan/style-assistant/internal/types"
)

// Rank orders items by jittered type priority, highest first. The
// returned slice is new; the input is not mutated.
func Rank(items []types.CatalogItem, rng *randutil.Source) []types.CatalogItem {
	scored := scoreByPriority(items, rng)
	sortDescending(scored)
	return collect(scored)
}

// RankWithSpec orders items by spec-weighted score, highest first. The
// returned slice is new; the input is not mutated.
func RankWithSpec(items []types.CatalogItem, spec types.StyleSpec, rng *randutil.Source) []types.CatalogItem {
	scored := scoreWithSpec(items, spec, rng)
	sortDescending(scored)
	return collect(scored)
}

// sortDescending sorts by score, highest first. The sort is stable:
// items with equal scores keep their relative input order, which tests
// rely on when jitter is pinned.
func sortDescending(scored []types.ScoredItem) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}

func collect(scored []types.ScoredItem) []types.CatalogItem {
	items := make([]types.CatalogItem, 0, len(scored))
	for _, s := range scored {
		items = append(items, s.Item)
	}
	return items
}
