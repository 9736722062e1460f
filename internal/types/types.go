// Package types defines the shared contracts passed between the style
// assistant's pipeline stages and the HTTP layer.
package types

// ChatRequest represents the request body for /chat.
type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	UserID int    `json:"user_id"`
}

// ChatResponse represents the response for /chat.
type ChatResponse struct {
	Success bool   `json:"success"`
	UserID  int    `json:"user_id"`
	Reply   string `json:"reply"`
}

// RecommendRequest represents the request body for /recommend.
type RecommendRequest struct {
	Theme  string `json:"theme" validate:"required"`
	UserID int    `json:"user_id"`
}

// RecommendResponse represents the response for /recommend.
type RecommendResponse struct {
	Success bool          `json:"success"`
	UserID  int           `json:"user_id"`
	Message string        `json:"message"`
	Outfit  []CatalogItem `json:"outfit"`
}

// StyleSpec is the classified styling intent for a single request.
// Vibe is empty when no secondary mood applies; it never equals Theme.
// Budget is carried on the contract but unused by ranking.
type StyleSpec struct {
	Theme  string   `json:"theme"`
	Vibe   string   `json:"vibe,omitempty"`
	Budget int      `json:"budget,omitempty"`
	Parts  []string `json:"parts,omitempty"`
}

// CatalogItem is a single outfit component. AssetID is an opaque string
// identifier. Type keeps its original case for display; matching is
// always done on the lowercased form.
type CatalogItem struct {
	AssetID string `json:"assetId"`
	Type    string `json:"type"`
}

// ScoredItem pairs a catalog item with its ranking weight.
type ScoredItem struct {
	Item  CatalogItem `json:"item"`
	Score float64     `json:"score"`
}

// RecommendationResult is the orchestrator's final payload. Outfit is
// empty whenever Success is false and never holds more than 10 items.
type RecommendationResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Outfit  []CatalogItem `json:"outfit"`
}
