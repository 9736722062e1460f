// Package stylist converts free-text prompts and theme names into style
// specifications using fixed, ordered keyword tables. Detection is
// deterministic so frontend tests stay stable.
package stylist

import (
	"strings"

	"github.com/jonathan/style-assistant/internal/types"
)

// keywordGroup pairs a canonical name with the keywords that select it.
// Groups are matched in slice order: the first group with any keyword
// occurring as a substring of the lowercased prompt wins, so specific
// themes (knight, medieval) must precede generic ones (formal, casual).
type keywordGroup struct {
	name     string
	keywords []string
}

var themeKeywords = []keywordGroup{
	{"knight", []string{"knight", "armor", "medieval warrior", "chivalry"}},
	{"medieval", []string{"medieval", "middle ages", "castle", "feudal"}},
	{"futuristic", []string{"futuristic", "cyberpunk", "sci-fi", "space", "tech", "neon"}},
	{"formal", []string{"formal", "professional", "business", "elegant"}},
	{"casual", []string{"casual", "everyday", "comfortable", "relaxed"}},
	{"sporty", []string{"sporty", "athletic", "active", "sport"}},
	{"gothic", []string{"gothic", "dark", "alternative", "goth"}},
	{"kawaii", []string{"kawaii", "cute", "colorful", "adorable"}},
}

var vibeKeywords = []keywordGroup{
	{"futuristic", []string{"futuristic", "cyberpunk", "sci-fi", "space", "tech", "neon"}},
	{"dramatic", []string{"dramatic", "gothic", "dark", "intense"}},
	{"playful", []string{"playful", "kawaii", "cute", "fun", "colorful"}},
	{"professional", []string{"professional", "formal", "business"}},
	{"relaxed", []string{"relaxed", "casual", "comfortable"}},
	{"active", []string{"active", "sporty", "athletic"}},
}

// DefaultTheme is used when no theme keyword matches the prompt.
const DefaultTheme = "casual"

// defaultParts is the fixed body-slot list carried by every classified
// spec, independent of theme.
var defaultParts = []string{
	"Head", "Face", "Torso", "Left Arm", "Right Arm",
	"Pants", "Shirt", "Back Accessory",
}

// Classify converts a natural-language prompt into a StyleSpec. It
// always succeeds: unmatched prompts get the default theme and no vibe.
// The vibe is skipped when it would duplicate the detected theme name.
func Classify(prompt string) types.StyleSpec {
	promptLower := strings.ToLower(prompt)

	theme := DefaultTheme
	for _, group := range themeKeywords {
		if matchesAny(promptLower, group.keywords) {
			theme = group.name
			break
		}
	}

	vibe := ""
	for _, group := range vibeKeywords {
		if group.name == theme {
			continue
		}
		if matchesAny(promptLower, group.keywords) {
			vibe = group.name
			break
		}
	}

	return types.StyleSpec{
		Theme: theme,
		Vibe:  vibe,
		Parts: DefaultParts(),
	}
}

// DefaultParts returns a copy of the fixed 8-slot part list.
func DefaultParts() []string {
	parts := make([]string, len(defaultParts))
	copy(parts, defaultParts)
	return parts
}

func matchesAny(promptLower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(promptLower, keyword) {
			return true
		}
	}
	return false
}
