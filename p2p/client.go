package p2p

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tinychain/blockchain"
)

// ChainFetcher retrieves a peer's full chain and its self-reported length.
// The resolver depends on this interface rather than on a concrete
// transport so tests can feed it canned chains.
type ChainFetcher interface {
	FetchChain(ctx context.Context, peer string) ([]blockchain.Block, int, error)
}

// HTTPFetcher fetches chains over the peer's /chain endpoint.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) FetchChain(ctx context.Context, peer string) ([]blockchain.Block, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+peer+"/chain", nil)
	if err != nil {
		return nil, 0, fmt.Errorf("building chain request for %s: %w", peer, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("peer %s returned status %d", peer, resp.StatusCode)
	}

	var payload struct {
		Chain  []blockchain.Block `json:"chain"`
		Length int                `json:"length"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, 0, fmt.Errorf("decoding chain from %s: %w", peer, err)
	}

	return payload.Chain, payload.Length, nil
}
