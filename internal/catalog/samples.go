// Package catalog produces outfit candidate items, either from an
// upstream catalog API with bounded retries or from local sample tables
// used as the offline fallback.
package catalog

import "github.com/jonathan/style-assistant/internal/types"

// sampleCatalogs is the read-only per-theme sample data used when the
// upstream catalog is unavailable. It is never mutated; callers always
// operate on copies.
var sampleCatalogs = map[string][]types.CatalogItem{
	"casual": {
		{AssetID: "1234567890", Type: "shirt"},
		{AssetID: "2345678901", Type: "pants"},
		{AssetID: "3456789012", Type: "hat"},
		{AssetID: "4567890123", Type: "shoes"},
		{AssetID: "5678901234", Type: "accessory"},
		{AssetID: "6789012345", Type: "hair"},
	},
	"formal": {
		{AssetID: "7890123456", Type: "shirt"},
		{AssetID: "8901234567", Type: "pants"},
		{AssetID: "9012345678", Type: "tie"},
		{AssetID: "1023456789", Type: "shoes"},
		{AssetID: "1134567890", Type: "jacket"},
		{AssetID: "1245678901", Type: "watch"},
	},
	"sporty": {
		{AssetID: "1356789012", Type: "jersey"},
		{AssetID: "1467890123", Type: "shorts"},
		{AssetID: "1578901234", Type: "sneakers"},
		{AssetID: "1689012345", Type: "cap"},
		{AssetID: "1790123456", Type: "socks"},
		{AssetID: "1801234567", Type: "wristband"},
	},
	"gothic": {
		{AssetID: "1912345678", Type: "shirt"},
		{AssetID: "2023456789", Type: "pants"},
		{AssetID: "2134567890", Type: "boots"},
		{AssetID: "2245678901", Type: "cape"},
		{AssetID: "2356789012", Type: "necklace"},
		{AssetID: "2467890123", Type: "mask"},
	},
	"kawaii": {
		{AssetID: "2578901234", Type: "dress"},
		{AssetID: "2689012345", Type: "bow"},
		{AssetID: "2790123456", Type: "shoes"},
		{AssetID: "2801234567", Type: "bag"},
		{AssetID: "2912345678", Type: "hairpin"},
		{AssetID: "3023456789", Type: "socks"},
	},
}

// sampleTable returns a copy of the sample rows for a theme. Unknown
// themes get a mix of the first four casual and first two formal rows.
func sampleTable(themeLower string) []types.CatalogItem {
	table, ok := sampleCatalogs[themeLower]
	if !ok {
		mixed := make([]types.CatalogItem, 0, 6)
		mixed = append(mixed, sampleCatalogs["casual"][:4]...)
		mixed = append(mixed, sampleCatalogs["formal"][:2]...)
		return mixed
	}

	items := make([]types.CatalogItem, len(table))
	copy(items, table)
	return items
}
