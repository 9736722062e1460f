package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/style-assistant/internal/randutil"
)

func TestGateway_FallsBackToSamplesAfterThreeFailures(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	g := NewGateway(upstream.URL, randutil.NewSeeded(1))
	items, err := g.Fetch(context.Background(), "gothic", 10)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Contains(t, sampleCatalogs["gothic"], item)
	}
}

func TestGateway_FailTwiceThenSucceed(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":424242,"itemType":"shirt"},{"id":"565656","itemType":"boots"}]}`)
	}))
	defer upstream.Close()

	g := NewGateway(upstream.URL, randutil.NewSeeded(1))
	items, err := g.Fetch(context.Background(), "gothic", 10)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, items, 2)
	assert.Equal(t, "424242", items[0].AssetID)
	assert.Equal(t, "shirt", items[0].Type)
	assert.Equal(t, "565656", items[1].AssetID)
	assert.Equal(t, "boots", items[1].Type)
}

func TestGateway_MalformedPayloadIsRetried(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		// Missing the required "data" array.
		fmt.Fprint(w, `{"items":[{"id":1}]}`)
	}))
	defer upstream.Close()

	g := NewGateway(upstream.URL, randutil.NewSeeded(1))
	items, err := g.Fetch(context.Background(), "casual", 10)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Contains(t, sampleCatalogs["casual"], item)
	}
}

func TestGateway_NonArrayDataIsRetried(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"data":"not a list"}`)
	}))
	defer upstream.Close()

	g := NewGateway(upstream.URL, randutil.NewSeeded(1))
	_, err := g.Fetch(context.Background(), "casual", 10)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGateway_SkipsRecordsWithoutID(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":"","itemType":"shirt"},{"id":777,"itemType":""},{"itemType":"hat"}]}`)
	}))
	defer upstream.Close()

	g := NewGateway(upstream.URL, randutil.NewSeeded(1))
	items, err := g.Fetch(context.Background(), "casual", 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "777", items[0].AssetID)
	// Missing item type defaults to the placeholder slot.
	assert.Equal(t, "Accessory", items[0].Type)
}

func TestGateway_TruncatesToLimit(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":1,"itemType":"a"},{"id":2,"itemType":"b"},{"id":3,"itemType":"c"},{"id":4,"itemType":"d"}]}`)
	}))
	defer upstream.Close()

	g := NewGateway(upstream.URL, randutil.NewSeeded(1))
	items, err := g.Fetch(context.Background(), "casual", 2)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestGateway_LimitCappedAtTen(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer upstream.Close()

	g := NewGateway(upstream.URL, randutil.NewSeeded(1))
	_, err := g.Fetch(context.Background(), "casual", 25)
	require.NoError(t, err)
}

func TestGateway_CancelledContextStopsAttempts(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGateway(upstream.URL, randutil.NewSeeded(1))
	_, err := g.Fetch(ctx, "casual", 10)

	assert.Error(t, err)
	assert.Equal(t, int32(0), calls.Load())
}
