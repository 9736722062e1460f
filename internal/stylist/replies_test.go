package stylist

import (
	"testing"

	"github.com/jonathan/style-assistant/internal/randutil"
	"github.com/stretchr/testify/assert"
)

func TestReply_GreetingPool(t *testing.T) {
	rng := randutil.NewSeeded(1)
	for i := 0; i < 10; i++ {
		reply := Reply("hello there", rng)
		assert.Contains(t, greetingReplies, reply)
	}
}

func TestReply_RecommendationPool(t *testing.T) {
	rng := randutil.NewSeeded(1)
	for _, message := range []string{
		"recommend an outfit for me",
		"I need a new outfit",
		"what style suits me",
	} {
		assert.Contains(t, recommendationReplies, Reply(message, rng))
	}
}

func TestReply_SubstringMatchInsideWords(t *testing.T) {
	// Intent words match as plain substrings, not whole words, so "hi"
	// inside "something" routes the message to the greeting pool.
	rng := randutil.NewSeeded(1)
	assert.Contains(t, greetingReplies, Reply("recommend me something", rng))
	assert.Contains(t, greetingReplies, Reply("nothing in particular", rng))
}

func TestReply_DefaultPool(t *testing.T) {
	rng := randutil.NewSeeded(1)
	assert.Contains(t, defaultReplies, Reply("how is the weather", rng))
}

func TestReply_GreetingBeatsRecommendation(t *testing.T) {
	// Intent groups are checked in order; a greeting word wins even
	// when recommendation words are present.
	rng := randutil.NewSeeded(1)
	assert.Contains(t, greetingReplies, Reply("hi, recommend an outfit", rng))
}

func TestStyleAdvice_KeywordGroups(t *testing.T) {
	tests := []struct {
		prompt   string
		fragment string
	}{
		{"something formal please", "formal look"},
		{"casual everyday wear", "Casual style"},
		{"athletic gear", "Sporty vibes"},
		{"dark and alternative", "Gothic style"},
		{"cute and colorful", "Kawaii style"},
		{"no keywords at all", "perfect style"},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Contains(t, StyleAdvice(tt.prompt), tt.fragment)
		})
	}
}

func TestStyleAdvice_Deterministic(t *testing.T) {
	assert.Equal(t, StyleAdvice("formal dinner"), StyleAdvice("formal dinner"))
}
