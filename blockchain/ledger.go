package blockchain

import (
	"log/slog"
	"sync"
	"time"
)

// Ledger owns the append-only chain and the pool of transactions waiting
// for inclusion in a block. All mutating operations are serialized behind a
// single mutex; readers get deep snapshots so they can never observe a
// chain or pool mid-mutation. One process owns exactly one Ledger - peers
// are fully independent instances reconciled only through resolution.
type Ledger struct {
	mu      sync.RWMutex
	chain   []Block
	pending []Transaction
}

// New constructs a ledger with its genesis block already committed. The
// chain is therefore never empty.
func New() *Ledger {
	l := &Ledger{}
	l.chain = append(l.chain, Block{
		Index:        1,
		Timestamp:    now(),
		Transactions: []Transaction{},
		Proof:        GenesisProof,
		PreviousHash: GenesisPreviousHash,
	})
	return l
}

// NewTransaction appends a transaction to the pending pool and returns the
// index of the block that will eventually contain it. The transaction is
// accepted as-is: no signature, balance or double-spend checks.
func (l *Ledger) NewTransaction(sender, recipient string, amount int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	})
	return l.chain[len(l.chain)-1].Index + 1
}

// NewBlock commits the current pending pool into a new block and clears the
// pool. An empty previousHash means "link to the current last block". The
// caller is responsible for having obtained a valid proof beforehand.
func (l *Ledger) NewBlock(proof int64, previousHash string) Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	if previousHash == "" {
		previousHash = HashBlock(&l.chain[len(l.chain)-1])
	}

	block := Block{
		Index:        int64(len(l.chain)) + 1,
		Timestamp:    now(),
		Transactions: l.pending,
		Proof:        proof,
		PreviousHash: previousHash,
	}
	if block.Transactions == nil {
		block.Transactions = []Transaction{}
	}

	l.chain = append(l.chain, block)
	l.pending = nil

	slog.Debug("block committed", "index", block.Index, "transactions", len(block.Transactions))
	return block
}

// LastBlock returns a copy of the most recently committed block. The chain
// always holds at least the genesis block.
func (l *Ledger) LastBlock() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyBlock(l.chain[len(l.chain)-1])
}

// Blocks returns a deep snapshot of the chain.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyChain(l.chain)
}

// Height returns the number of committed blocks.
func (l *Ledger) Height() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.chain)
}

// Pending returns a snapshot of the not-yet-committed transactions.
func (l *Ledger) Pending() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Transaction(nil), l.pending...)
}

// ReplaceChain swaps in a new chain wholesale. The ledger stores its own
// deep copy so the caller's slice can be mutated afterwards without
// affecting ledger state. The pending pool is left untouched.
func (l *Ledger) ReplaceChain(blocks []Block) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.chain = copyChain(blocks)
}

func copyBlock(b Block) Block {
	// make keeps an empty list non-nil: a nil slice would encode as JSON
	// null instead of [] and change the block's canonical hash.
	txs := make([]Transaction, len(b.Transactions))
	copy(txs, b.Transactions)
	b.Transactions = txs
	return b
}

func copyChain(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i := range blocks {
		out[i] = copyBlock(blocks[i])
	}
	return out
}

func now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
