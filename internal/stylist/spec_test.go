package stylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecForTheme_KnownThemes(t *testing.T) {
	tests := []struct {
		theme string
		vibe  string
		parts []string
	}{
		{"formal", "professional", []string{"shirt", "pants", "shoes", "tie", "jacket"}},
		{"casual", "relaxed", []string{"shirt", "pants", "shoes", "hat"}},
		{"sporty", "active", []string{"jersey", "shorts", "sneakers", "cap"}},
		{"gothic", "dramatic", []string{"shirt", "pants", "boots", "cape", "accessories"}},
		{"kawaii", "playful", []string{"dress", "bow", "shoes", "bag", "accessories"}},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			spec := SpecForTheme(tt.theme)
			assert.Equal(t, tt.theme, spec.Theme)
			assert.Equal(t, tt.vibe, spec.Vibe)
			assert.Equal(t, tt.parts, spec.Parts)
		})
	}
}

func TestSpecForTheme_UnknownTheme(t *testing.T) {
	spec := SpecForTheme("steampunk")
	assert.Equal(t, "steampunk", spec.Theme)
	assert.Equal(t, "stylish", spec.Vibe)
	assert.Equal(t, []string{"shirt", "pants", "shoes", "accessories"}, spec.Parts)
}

func TestSpecForTheme_CaseInsensitiveLookupPreservesSpelling(t *testing.T) {
	spec := SpecForTheme("Gothic")
	assert.Equal(t, "Gothic", spec.Theme)
	assert.Equal(t, "dramatic", spec.Vibe)
}

func TestSpecForTheme_PartsAreCopies(t *testing.T) {
	spec := SpecForTheme("formal")
	spec.Parts[0] = "mutated"
	assert.Equal(t, "shirt", SpecForTheme("formal").Parts[0])
}
