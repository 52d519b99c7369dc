package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tinychain_transactions_submitted_total",
		Help: "Transactions accepted into the pending pool.",
	})
	blocksMined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tinychain_blocks_mined_total",
		Help: "Blocks mined by this node.",
	})
	resolveRounds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tinychain_resolve_rounds_total",
		Help: "Consensus resolution rounds triggered on this node.",
	})
)
