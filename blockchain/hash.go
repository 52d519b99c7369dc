package blockchain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashBlock returns the hex-encoded SHA-256 digest of a block's canonical
// JSON encoding. The block is re-encoded through a generic map so that keys
// are emitted in sorted order; two logically equal blocks hash identically
// no matter how their fields were ordered in any transient representation.
func HashBlock(block *Block) string {
	raw, err := json.Marshal(block)
	if err != nil {
		// Block contains only plain scalars and slices, this cannot happen.
		panic(err)
	}

	// encoding/json writes map keys in sorted order, which gives us the
	// canonical byte encoding.
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		panic(err)
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		panic(err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
