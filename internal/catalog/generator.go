package catalog

import (
	"strconv"
	"strings"

	"github.com/jonathan/style-assistant/internal/randutil"
	"github.com/jonathan/style-assistant/internal/types"
)

// MaxItems is the hard cap on any candidate list.
const MaxItems = 10

// maxDetailedParts bounds detailed-mode generation.
const maxDetailedParts = 6

// partIDStride spaces consecutive synthesized asset ids.
const partIDStride = 111111

// themeBases maps a theme to the base asset id used for detailed-mode
// generation.
var themeBases = map[string]int64{
	"formal": 7890000000,
	"casual": 1234000000,
	"sporty": 1356000000,
	"gothic": 1912000000,
	"kawaii": 2578000000,
}

// defaultBase is used for themes without a base entry.
const defaultBase = 1000000000

// GenerateFromSpec synthesizes candidate items from a classified spec.
// Asset ids follow base + index*stride over the first six requested
// parts, so identical specs always yield identical sequences.
func GenerateFromSpec(spec types.StyleSpec) []types.CatalogItem {
	base, ok := themeBases[strings.ToLower(spec.Theme)]
	if !ok {
		base = defaultBase
	}

	parts := spec.Parts
	if len(parts) == 0 {
		parts = []string{"shirt", "pants", "shoes", "accessories"}
	}
	if len(parts) > maxDetailedParts {
		parts = parts[:maxDetailedParts]
	}

	items := make([]types.CatalogItem, 0, len(parts))
	for i, part := range parts {
		assetID := strconv.FormatInt(base+int64(i)*partIDStride, 10)
		items = append(items, types.CatalogItem{AssetID: assetID, Type: part})
	}
	return items
}

// SampleForTheme returns a randomized subset of the theme's sample
// table: the copied rows are shuffled and cut to a prefix whose length
// is drawn uniformly from [min(6,N), min(10,N)]. A positive limit
// truncates the result further. The shared tables are never mutated.
func SampleForTheme(theme string, limit int, rng *randutil.Source) []types.CatalogItem {
	items := sampleTable(strings.ToLower(theme))

	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	lower := min(6, len(items))
	upper := min(MaxItems, len(items))
	count := upper
	if upper > lower {
		count = rng.IntInRange(lower, upper)
	}
	items = items[:count]

	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
