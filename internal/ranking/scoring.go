// Package ranking scores and orders outfit candidates using fixed
// priority and affinity tables plus bounded random jitter.
package ranking

import (
	"strings"

	"github.com/jonathan/style-assistant/internal/randutil"
	"github.com/jonathan/style-assistant/internal/types"
)

// typePriorities is the base score per slot type for unweighted
// ranking. Unknown types get defaultPriority.
var typePriorities = map[string]float64{
	"shirt":     10,
	"dress":     10,
	"pants":     9,
	"shorts":    9,
	"shoes":     8,
	"sneakers":  8,
	"boots":     8,
	"hat":       7,
	"cap":       7,
	"jacket":    6,
	"cape":      6,
	"tie":       5,
	"bow":       5,
	"accessory": 4,
	"necklace":  4,
	"bag":       3,
	"socks":     2,
	"hairpin":   1,
	"wristband": 1,
}

const defaultPriority = 5.0

// Spec-weighted scoring components.
const (
	specBaseScore  = 5.0
	partMatchBonus = 3.0
	themeBonus     = 2.0
	vibeBonus      = 1.0
)

// themeAffinity lists the slot types each theme canonically expects.
var themeAffinity = map[string][]string{
	"formal": {"shirt", "pants", "tie", "jacket", "shoes"},
	"casual": {"shirt", "pants", "hat", "shoes"},
	"sporty": {"jersey", "shorts", "sneakers", "cap"},
	"gothic": {"boots", "cape", "necklace"},
	"kawaii": {"dress", "bow", "bag", "hairpin"},
}

// vibeAffinity lists the slot types each vibe favors.
var vibeAffinity = map[string][]string{
	"dramatic":     {"cape", "boots", "necklace"},
	"playful":      {"bow", "bag", "hairpin"},
	"professional": {"tie", "jacket"},
}

// scoreByPriority assigns each item its type priority multiplied by a
// jitter factor in [0.8, 1.2).
func scoreByPriority(items []types.CatalogItem, rng *randutil.Source) []types.ScoredItem {
	scored := make([]types.ScoredItem, 0, len(items))
	for _, item := range items {
		base, ok := typePriorities[strings.ToLower(item.Type)]
		if !ok {
			base = defaultPriority
		}
		scored = append(scored, types.ScoredItem{
			Item:  item,
			Score: base * rng.Float64InRange(0.8, 1.2),
		})
	}
	return scored
}

// scoreWithSpec assigns spec-weighted scores: a fixed base, bonuses for
// requested-part matches and theme/vibe affinity, and a jitter factor
// in [0.9, 1.1).
func scoreWithSpec(items []types.CatalogItem, spec types.StyleSpec, rng *randutil.Source) []types.ScoredItem {
	theme := strings.ToLower(spec.Theme)
	vibe := strings.ToLower(spec.Vibe)

	parts := make([]string, 0, len(spec.Parts))
	for _, part := range spec.Parts {
		parts = append(parts, strings.ToLower(part))
	}

	scored := make([]types.ScoredItem, 0, len(items))
	for _, item := range items {
		slotType := strings.ToLower(item.Type)

		score := specBaseScore
		if contains(parts, slotType) {
			score += partMatchBonus
		}
		if contains(themeAffinity[theme], slotType) {
			score += themeBonus
		}
		if vibe != "" && contains(vibeAffinity[vibe], slotType) {
			score += vibeBonus
		}

		scored = append(scored, types.ScoredItem{
			Item:  item,
			Score: score * rng.Float64InRange(0.9, 1.1),
		})
	}
	return scored
}

func contains(set []string, slotType string) bool {
	for _, entry := range set {
		if entry == slotType {
			return true
		}
	}
	return false
}
