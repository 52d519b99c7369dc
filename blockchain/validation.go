package blockchain

import "log/slog"

// ValidChain walks a candidate chain from its first block and checks every
// subsequent block against its predecessor: the hash link must match and
// the proof must satisfy the work predicate. The first block's own fields
// are accepted unconditionally (genesis carries sentinel values), and a
// chain of length 1 is vacuously valid.
func ValidChain(blocks []Block) bool {
	if len(blocks) == 0 {
		return false
	}

	last := blocks[0]
	for i := 1; i < len(blocks); i++ {
		block := blocks[i]

		if block.PreviousHash != HashBlock(&last) {
			slog.Debug("chain rejected: broken hash link", "index", block.Index)
			return false
		}
		if !ValidProof(last.Proof, block.Proof) {
			slog.Debug("chain rejected: invalid proof", "index", block.Index)
			return false
		}

		last = block
	}
	return true
}
