package p2p

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tinychain/blockchain"
)

func TestHTTPFetcherFetchesChain(t *testing.T) {
	chain := minedChain(t, 2)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chain" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"chain":  chain,
			"length": len(chain),
		})
	}))
	defer ts.Close()

	fetcher := NewHTTPFetcher(time.Second)
	peer := strings.TrimPrefix(ts.URL, "http://")

	got, length, err := fetcher.FetchChain(context.Background(), peer)
	if err != nil {
		t.Fatalf("FetchChain failed: %v", err)
	}
	if length != 2 {
		t.Errorf("Expected reported length 2, got %d", length)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(got))
	}
	if blockchain.HashBlock(&got[1]) != blockchain.HashBlock(&chain[1]) {
		t.Error("Fetched chain should round-trip through JSON unchanged")
	}
}

func TestHTTPFetcherRejectsNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer ts.Close()

	fetcher := NewHTTPFetcher(time.Second)
	peer := strings.TrimPrefix(ts.URL, "http://")

	if _, _, err := fetcher.FetchChain(context.Background(), peer); err == nil {
		t.Error("Non-200 response should surface as an error")
	}
}

func TestHTTPFetcherHonorsContextTimeout(t *testing.T) {
	blocked := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer ts.Close()
	defer close(blocked)

	fetcher := NewHTTPFetcher(10 * time.Second)
	peer := strings.TrimPrefix(ts.URL, "http://")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := fetcher.FetchChain(ctx, peer)
	if err == nil {
		t.Fatal("Expected a timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Fetch should abort on context deadline, took %v", elapsed)
	}
}
