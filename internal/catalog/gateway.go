package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/style-assistant/internal/randutil"
	"github.com/jonathan/style-assistant/internal/types"
)

const (
	// maxAttempts is the total upstream attempt budget per fetch.
	maxAttempts = 3
	// attemptTimeout bounds each individual upstream attempt.
	attemptTimeout = 10 * time.Second
	// defaultSlotType is used when a record omits its item type.
	defaultSlotType = "Accessory"
)

// FetchError represents an error during an upstream catalog fetch.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// searchPayloadSchema guards the upstream payload shape before decoding:
// the response must be an object whose "data" field is an array.
var searchPayloadSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"required": ["data"],
	"properties": {
		"data": {"type": "array"}
	}
}`)

// assetID accepts either a JSON string or a number; the upstream
// catalog has shipped both shapes.
type assetID string

func (a *assetID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = assetID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = assetID(n.String())
	return nil
}

type catalogRecord struct {
	ID       assetID `json:"id"`
	ItemType string  `json:"itemType"`
}

type searchPayload struct {
	Data []catalogRecord `json:"data"`
}

// Gateway fetches outfit candidates from the upstream catalog API under
// a bounded-retry policy, falling back to local sample data when the
// attempt budget is exhausted.
type Gateway struct {
	baseURL string
	client  *http.Client
	rng     *randutil.Source
	group   singleflight.Group
}

// NewGateway creates a gateway against the given catalog base URL.
func NewGateway(baseURL string, rng *randutil.Source) *Gateway {
	return &Gateway{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: attemptTimeout},
		rng:     rng,
	}
}

// Fetch obtains up to limit candidate items for a theme. Transient
// upstream failures (request errors, non-2xx, malformed payloads) are
// retried up to the attempt budget with no backoff; on exhaustion the
// theme's sample table is returned instead, so Fetch only errors when
// the caller's context is cancelled. Concurrent fetches for the same
// theme and limit share one upstream round trip.
func (g *Gateway) Fetch(ctx context.Context, theme string, limit int) ([]types.CatalogItem, error) {
	if limit <= 0 || limit > MaxItems {
		limit = MaxItems
	}

	key := strings.ToLower(theme) + "/" + strconv.Itoa(limit)
	v, err, _ := g.group.Do(key, func() (any, error) {
		return g.fetchWithRetry(ctx, theme, limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.CatalogItem), nil
}

func (g *Gateway) fetchWithRetry(ctx context.Context, theme string, limit int) ([]types.CatalogItem, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		// Stop issuing attempts once the caller has gone away.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, err := g.fetchOnce(ctx, theme, limit)
		if err != nil {
			log.Printf("[catalog] attempt %d/%d for theme %q failed: %v", attempt, maxAttempts, theme, err)
			continue
		}
		return items, nil
	}

	log.Printf("[catalog] upstream exhausted for theme %q, falling back to sample data", theme)
	return SampleForTheme(theme, limit, g.rng), nil
}

func (g *Gateway) fetchOnce(ctx context.Context, theme string, limit int) ([]types.CatalogItem, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	searchURL := fmt.Sprintf("%s/v1/search/items?category=Clothing&keyword=%s&limit=%d",
		g.baseURL, url.QueryEscape(theme), limit)

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, &FetchError{URL: searchURL, Message: "failed to create request", Cause: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: searchURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: searchURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: searchURL, Message: "failed to read response body", Cause: err}
	}

	result, err := gojsonschema.Validate(searchPayloadSchema, gojsonschema.NewBytesLoader(body))
	if err != nil || !result.Valid() {
		return nil, &FetchError{URL: searchURL, Message: "malformed payload shape", Cause: err}
	}

	var payload searchPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{URL: searchURL, Message: "failed to decode payload", Cause: err}
	}

	items := make([]types.CatalogItem, 0, len(payload.Data))
	for _, record := range payload.Data {
		if record.ID == "" {
			continue
		}
		slotType := record.ItemType
		if slotType == "" {
			slotType = defaultSlotType
		}
		items = append(items, types.CatalogItem{AssetID: string(record.ID), Type: slotType})
		if len(items) == limit {
			break
		}
	}
	return items, nil
}
