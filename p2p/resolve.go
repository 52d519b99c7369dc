package p2p

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tinychain/blockchain"
)

var peerFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tinychain_peer_fetch_failures_total",
	Help: "Peer chain fetches that failed or timed out during resolution.",
})

// Peer outcome statuses reported by Resolve.
const (
	OutcomeCandidate   = "candidate"   // longer than the local chain and valid
	OutcomeBehind      = "behind"      // not longer than the local chain
	OutcomeInvalid     = "invalid"     // longer but failed validation
	OutcomeUnreachable = "unreachable" // fetch failed or timed out
)

// PeerOutcome records what happened with a single peer during one
// resolution round. Unreachable and invalid peers are skipped, never
// propagated as errors, but they are reported here for observability.
type PeerOutcome struct {
	Peer   string `json:"peer"`
	Length int    `json:"length"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Result is the outcome of one resolution round.
type Result struct {
	Replaced bool          `json:"replaced"`
	Length   int           `json:"length"`
	Outcomes []PeerOutcome `json:"peers"`
}

// Resolver reconciles the local ledger with its peers using the
// longest-valid-chain rule. It trusts any peer's self-reported chain as
// long as it passes structural validation; this is conflict resolution,
// not Byzantine fault tolerance.
type Resolver struct {
	ledger   *blockchain.Ledger
	registry *Registry
	fetcher  ChainFetcher
	timeout  time.Duration
}

func NewResolver(ledger *blockchain.Ledger, registry *Registry, fetcher ChainFetcher, timeout time.Duration) *Resolver {
	return &Resolver{
		ledger:   ledger,
		registry: registry,
		fetcher:  fetcher,
		timeout:  timeout,
	}
}

type fetchResult struct {
	peer   string
	chain  []blockchain.Block
	length int
	err    error
}

// Resolve queries every registered peer for its chain, in parallel, and
// replaces the local chain if a strictly longer valid one was reported.
// A peer that never responds cannot stall the round past its own timeout,
// and a failing peer never fails the round. Ties at the maximum length are
// broken arbitrarily.
func (r *Resolver) Resolve(ctx context.Context) Result {
	peers := r.registry.List()
	localLength := r.ledger.Height()

	results := make(chan fetchResult, len(peers))
	var wg sync.WaitGroup
	for _, peer := range peers {
		wg.Add(1)
		go func(peer string) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			chain, length, err := r.fetcher.FetchChain(fetchCtx, peer)
			results <- fetchResult{peer: peer, chain: chain, length: length, err: err}
		}(peer)
	}
	wg.Wait()
	close(results)

	// The reduction is commutative: the winner is the single longest valid
	// chain seen, so gather order does not matter.
	var winner []blockchain.Block
	maxLength := localLength
	outcomes := make([]PeerOutcome, 0, len(peers))

	for res := range results {
		switch {
		case res.err != nil:
			peerFetchFailures.Inc()
			slog.Warn("peer unreachable during resolution", "peer", res.peer, "error", res.err)
			outcomes = append(outcomes, PeerOutcome{
				Peer:   res.peer,
				Status: OutcomeUnreachable,
				Error:  res.err.Error(),
			})

		case res.length <= localLength:
			outcomes = append(outcomes, PeerOutcome{
				Peer:   res.peer,
				Length: res.length,
				Status: OutcomeBehind,
			})

		case !blockchain.ValidChain(res.chain):
			slog.Warn("peer reported an invalid chain", "peer", res.peer, "length", res.length)
			outcomes = append(outcomes, PeerOutcome{
				Peer:   res.peer,
				Length: res.length,
				Status: OutcomeInvalid,
			})

		default:
			outcomes = append(outcomes, PeerOutcome{
				Peer:   res.peer,
				Length: res.length,
				Status: OutcomeCandidate,
			})
			if res.length > maxLength {
				maxLength = res.length
				winner = res.chain
			}
		}
	}

	if winner == nil {
		return Result{Replaced: false, Length: r.ledger.Height(), Outcomes: outcomes}
	}

	r.ledger.ReplaceChain(winner)
	slog.Info("local chain replaced", "length", maxLength)
	return Result{Replaced: true, Length: r.ledger.Height(), Outcomes: outcomes}
}
