package blockchain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// DifficultyPrefix is the fixed proof-of-work target: the hex digest of a
// candidate solution must start with this many zero characters.
const DifficultyPrefix = "0000"

// ValidProof reports whether proof solves the puzzle relative to the
// previous block's proof: sha256("<lastProof><proof>") must begin with
// DifficultyPrefix. Chain validation uses this directly to re-verify
// historical blocks without re-running the search.
func ValidProof(lastProof, proof int64) bool {
	guess := strconv.FormatInt(lastProof, 10) + strconv.FormatInt(proof, 10)
	sum := sha256.Sum256([]byte(guess))
	return strings.HasPrefix(hex.EncodeToString(sum[:]), DifficultyPrefix)
}

// ProofOfWork performs a linear scan over non-negative candidates and
// returns the smallest one that satisfies ValidProof. The search has no
// upper bound: callers must treat this as a blocking, CPU-bound computation
// of unbounded duration and must not hold ledger locks while running it.
func ProofOfWork(lastProof int64) int64 {
	var proof int64
	for !ValidProof(lastProof, proof) {
		proof++
	}
	return proof
}

// Solver finds the proof for the next block. It exists so the request layer
// can run the search off the ledger's critical path and so tests can
// substitute a cheaper implementation.
type Solver interface {
	Solve(lastProof int64) int64
}

// HashCash is the default Solver, backed by ProofOfWork.
type HashCash struct{}

func (HashCash) Solve(lastProof int64) int64 {
	return ProofOfWork(lastProof)
}
