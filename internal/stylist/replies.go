package stylist

import (
	"strings"

	"github.com/jonathan/style-assistant/internal/randutil"
)

// Reply pools for the NPC chat endpoint, keyed by detected intent.
var (
	greetingReplies = []string{
		"Welcome to the Outfit Marketplace! I'm here to help you find the perfect style!",
		"Hey there! Ready to discover some amazing outfits? I've got tons of recommendations!",
		"Hello! I'm your AI Style Assistant. What kind of look are you going for today?",
	}

	recommendationReplies = []string{
		"Based on your style preferences, I think you'll love these outfit suggestions!",
		"I've found some fantastic pieces that would look amazing on you!",
		"These items are trending right now and would be perfect for your style!",
	}

	defaultReplies = []string{
		"That's interesting! I'm here to help you with outfit recommendations. What style are you looking for?",
		"I love talking about fashion! What kind of outfits are you interested in?",
		"Style is all about expressing yourself! What theme speaks to you today?",
	}
)

var (
	greetingWords       = []string{"hello", "hi", "hey", "greetings"}
	recommendationWords = []string{"recommend", "suggestion", "outfit", "style", "clothes"}
)

// Reply classifies the message into greeting, recommendation intent, or
// other, and returns one uniformly random reply from the matching pool.
func Reply(message string, rng *randutil.Source) string {
	messageLower := strings.ToLower(message)

	switch {
	case matchesAny(messageLower, greetingWords):
		return randutil.Pick(rng, greetingReplies)
	case matchesAny(messageLower, recommendationWords):
		return randutil.Pick(rng, recommendationReplies)
	default:
		return randutil.Pick(rng, defaultReplies)
	}
}

// adviceGroup pairs style keywords with the canned advice they trigger.
type adviceGroup struct {
	keywords []string
	advice   string
}

var adviceGroups = []adviceGroup{
	{[]string{"formal", "professional", "business"},
		"For a formal look, I'd recommend elegant pieces with clean lines and sophisticated colors!"},
	{[]string{"casual", "everyday", "comfortable"},
		"Casual style is all about comfort and versatility. Think relaxed fits and easy-to-mix pieces!"},
	{[]string{"sporty", "athletic", "active"},
		"Sporty vibes call for functional yet stylish pieces that move with you!"},
	{[]string{"gothic", "dark", "alternative"},
		"Gothic style embraces darker aesthetics with dramatic silhouettes and bold accessories!"},
	{[]string{"kawaii", "cute", "colorful"},
		"Kawaii style is all about embracing cuteness with bright colors and playful elements!"},
}

const defaultAdvice = "I'm here to help you discover your perfect style! What kind of vibe are you going for?"

// StyleAdvice returns a deterministic advice line for the prompt based
// on the first matching keyword group.
func StyleAdvice(prompt string) string {
	promptLower := strings.ToLower(prompt)
	for _, group := range adviceGroups {
		if matchesAny(promptLower, group.keywords) {
			return group.advice
		}
	}
	return defaultAdvice
}
