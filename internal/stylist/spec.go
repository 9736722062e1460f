package stylist

import (
	"strings"

	"github.com/jonathan/style-assistant/internal/types"
)

// themeVibes maps a theme to the secondary mood it implies when the
// caller supplies a bare theme name instead of a free-text prompt.
var themeVibes = map[string]string{
	"formal": "professional",
	"casual": "relaxed",
	"sporty": "active",
	"gothic": "dramatic",
	"kawaii": "playful",
}

// themeParts maps a theme to the outfit slots worth filling for it.
var themeParts = map[string][]string{
	"formal": {"shirt", "pants", "shoes", "tie", "jacket"},
	"casual": {"shirt", "pants", "shoes", "hat"},
	"sporty": {"jersey", "shorts", "sneakers", "cap"},
	"gothic": {"shirt", "pants", "boots", "cape", "accessories"},
	"kawaii": {"dress", "bow", "shoes", "bag", "accessories"},
}

var fallbackParts = []string{"shirt", "pants", "shoes", "accessories"}

// SpecForTheme derives a StyleSpec from an explicit theme name. Unknown
// themes keep the caller's spelling but get generic vibe and parts.
func SpecForTheme(theme string) types.StyleSpec {
	themeLower := strings.ToLower(theme)

	vibe, ok := themeVibes[themeLower]
	if !ok {
		vibe = "stylish"
	}

	parts, ok := themeParts[themeLower]
	if !ok {
		parts = fallbackParts
	}
	specParts := make([]string, len(parts))
	copy(specParts, parts)

	return types.StyleSpec{
		Theme: theme,
		Vibe:  vibe,
		Parts: specParts,
	}
}
