// Package pipeline provides the high-level orchestration of the style
// assistant: classify the request, obtain candidates, rank them, and
// package the final contract.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/style-assistant/internal/catalog"
	"github.com/jonathan/style-assistant/internal/randutil"
	"github.com/jonathan/style-assistant/internal/ranking"
	"github.com/jonathan/style-assistant/internal/stylist"
	"github.com/jonathan/style-assistant/internal/types"
)

// Options holds configuration for building an Assistant.
type Options struct {
	// CatalogURL is the upstream catalog API base URL.
	CatalogURL string
	// Seed pins the random source for reproducible output; zero means
	// entropy-seeded.
	Seed int64
}

// Assistant sequences the recommendation pipeline. It holds no
// per-request state; one instance serves all requests.
type Assistant struct {
	gateway *catalog.Gateway
	rng     *randutil.Source
}

// New creates an Assistant from options.
func New(opts Options) *Assistant {
	rng := randutil.New()
	if opts.Seed != 0 {
		rng = randutil.NewSeeded(opts.Seed)
	}
	return &Assistant{
		gateway: catalog.NewGateway(opts.CatalogURL, rng),
		rng:     rng,
	}
}

// Chat replies to a conversational message from one of the fixed reply
// pools. The prompt is validated at the HTTP boundary.
func (a *Assistant) Chat(_ context.Context, req types.ChatRequest) types.ChatResponse {
	reply := stylist.Reply(req.Prompt, a.rng)

	log.Printf("[chat] user %d: %q -> %q", req.UserID, truncate(req.Prompt, 50), truncate(reply, 50))

	return types.ChatResponse{
		Success: true,
		UserID:  req.UserID,
		Reply:   reply,
	}
}

// Recommend runs the full pipeline for an explicit theme: derive a
// spec, fetch candidates through the retry gateway, rank them, and
// build the result. Transient upstream failures are absorbed by the
// gateway; if candidate retrieval still fails unexpectedly, one
// sample-data fallback is attempted before the error surfaces.
func (a *Assistant) Recommend(ctx context.Context, req types.RecommendRequest) (types.RecommendationResult, error) {
	spec := stylist.SpecForTheme(req.Theme)
	limit := a.rng.IntInRange(6, 10)

	items, err := a.gateway.Fetch(ctx, req.Theme, limit)
	if err != nil {
		if ctx.Err() != nil {
			return types.RecommendationResult{}, fmt.Errorf("recommendation cancelled: %w", err)
		}
		log.Printf("[recommend] gateway failed for theme %q, trying sample fallback: %v", req.Theme, err)
		items = catalog.SampleForTheme(req.Theme, limit, a.rng)
	}

	outfit := ranking.RankWithSpec(items, spec, a.rng)
	if len(outfit) > catalog.MaxItems {
		outfit = outfit[:catalog.MaxItems]
	}

	if len(outfit) == 0 {
		return types.RecommendationResult{
			Success: false,
			Message: fmt.Sprintf("No outfit items found for theme %q. Try another theme!", req.Theme),
			Outfit:  []types.CatalogItem{},
		}, nil
	}

	log.Printf("[recommend] theme %q -> %d items", req.Theme, len(outfit))

	return types.RecommendationResult{
		Success: true,
		Message: fmt.Sprintf("Your %s outfit has been coordinated!", strings.ToLower(req.Theme)),
		Outfit:  outfit,
	}, nil
}

// RecommendFromPrompt classifies a free-text prompt and builds a
// deterministic outfit from the detailed generator, bypassing the
// upstream catalog. The user id is carried for logging only; the
// result contract does not echo it.
func (a *Assistant) RecommendFromPrompt(_ context.Context, prompt string, userID int) (types.RecommendationResult, error) {
	spec := stylist.Classify(prompt)
	items := catalog.GenerateFromSpec(spec)
	outfit := ranking.RankWithSpec(items, spec, a.rng)

	log.Printf("[recommend] user %d prompt %q -> theme %q, %d items", userID, truncate(prompt, 50), spec.Theme, len(outfit))

	if len(outfit) == 0 {
		return types.RecommendationResult{
			Success: false,
			Message: "No outfit items could be generated for that prompt.",
			Outfit:  []types.CatalogItem{},
		}, nil
	}

	return types.RecommendationResult{
		Success: true,
		Message: fmt.Sprintf("Your %s outfit has been coordinated!", spec.Theme),
		Outfit:  outfit,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
