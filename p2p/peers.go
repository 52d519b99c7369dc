package p2p

import (
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Registry is the set of known peer network locations. Addresses are
// normalized to their host:port authority and deduplicated; the set carries
// no ordering guarantee.
type Registry struct {
	mu    sync.RWMutex
	peers map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{peers: make(map[string]struct{})}
}

// Register adds a peer by address and returns the normalized authority that
// was stored. Inputs are not validated: anything that cannot be parsed is
// stored verbatim and simply fails later at fetch time.
func (r *Registry) Register(address string) string {
	authority := normalizeAuthority(address)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.peers[authority] = struct{}{}
	return authority
}

// List returns a snapshot of the peer set, sorted for stable output.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.peers))
	for peer := range r.peers {
		out = append(out, peer)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.peers)
}

// normalizeAuthority extracts the host:port component of an address,
// discarding scheme, path and query. Addresses given without a scheme
// ("127.0.0.1:5001") are treated as a bare authority.
func normalizeAuthority(address string) string {
	address = strings.TrimSpace(address)

	if u, err := url.Parse(address); err == nil && u.Host != "" {
		return u.Host
	}
	// No scheme: url.Parse reads "127.0.0.1:5001" as scheme "127.0.0.1",
	// so re-parse it as a scheme-relative reference.
	if u, err := url.Parse("//" + address); err == nil && u.Host != "" {
		return u.Host
	}
	return address
}
