package node

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"tinychain/api"
	"tinychain/blockchain"
	"tinychain/p2p"
)

const fetchTimeout = 2 * time.Second

// Config holds all configuration for one node.
type Config struct {
	// ID is the node's self-identifier, used as the recipient of mining
	// rewards. A random one is generated when empty.
	ID string
	// Listen is the host:port the HTTP API binds to.
	Listen string
	// Peers are registered into the peer set at startup.
	Peers []string
}

// Node wires a ledger, a peer registry, a consensus resolver and the HTTP
// request layer into one running instance. There is no hidden global: every
// request path receives these through the Node.
type Node struct {
	ID     string
	config Config

	ledger   *blockchain.Ledger
	registry *p2p.Registry
	resolver *p2p.Resolver
	server   *api.Server
}

func New(config Config) *Node {
	id := config.ID
	if id == "" {
		id = strings.ReplaceAll(uuid.New().String(), "-", "")
	}

	ledger := blockchain.New()
	registry := p2p.NewRegistry()
	fetcher := p2p.NewHTTPFetcher(fetchTimeout)
	resolver := p2p.NewResolver(ledger, registry, fetcher, fetchTimeout)

	server := api.NewServer(api.Config{
		NodeID:   id,
		Ledger:   ledger,
		Registry: registry,
		Resolver: resolver,
	})

	return &Node{
		ID:       id,
		config:   config,
		ledger:   ledger,
		registry: registry,
		resolver: resolver,
		server:   server,
	}
}

// Start registers the configured seed peers and serves the HTTP API.
// Blocks until the listener fails. The ledger lives only in memory: a
// restart loses all chain and pool state.
func (n *Node) Start() error {
	for _, peer := range n.config.Peers {
		authority := n.registry.Register(peer)
		slog.Info("registered seed peer", "peer", authority)
	}

	slog.Info("node starting", "id", n.ID, "listen", n.config.Listen, "height", n.ledger.Height())
	return n.server.Run(n.config.Listen)
}

// Ledger returns the node's ledger, for tests.
func (n *Node) Ledger() *blockchain.Ledger {
	return n.ledger
}

// Registry returns the node's peer registry, for tests.
func (n *Node) Registry() *p2p.Registry {
	return n.registry
}

// API returns the node's HTTP server, for tests.
func (n *Node) API() *api.Server {
	return n.server
}
