package blockchain

import (
	"encoding/json"
	"testing"
)

func TestHashBlockDeterministic(t *testing.T) {
	block := Block{
		Index:     2,
		Timestamp: 1724400000.25,
		Transactions: []Transaction{
			{Sender: "alice", Recipient: "bob", Amount: 10},
		},
		Proof:        35293,
		PreviousHash: "abc123",
	}

	first := HashBlock(&block)
	second := HashBlock(&block)

	if first != second {
		t.Errorf("HashBlock not deterministic: %s != %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(first))
	}
}

func TestHashBlockIgnoresFieldOrder(t *testing.T) {
	block := Block{
		Index:     2,
		Timestamp: 1724400000.25,
		Transactions: []Transaction{
			{Sender: "alice", Recipient: "bob", Amount: 10},
		},
		Proof:        35293,
		PreviousHash: "abc123",
	}

	// Same block, decoded from a JSON document with shuffled key order.
	reordered := `{
		"previous_hash": "abc123",
		"proof": 35293,
		"transactions": [{"amount": 10, "recipient": "bob", "sender": "alice"}],
		"timestamp": 1724400000.25,
		"index": 2
	}`
	var decoded Block
	if err := json.Unmarshal([]byte(reordered), &decoded); err != nil {
		t.Fatalf("Failed to decode reordered block: %v", err)
	}

	if HashBlock(&block) != HashBlock(&decoded) {
		t.Error("Logically equal blocks should hash identically regardless of field order")
	}
}

func TestHashBlockSensitiveToContent(t *testing.T) {
	base := Block{
		Index:        2,
		Timestamp:    1724400000.25,
		Transactions: []Transaction{{Sender: "alice", Recipient: "bob", Amount: 10}},
		Proof:        35293,
		PreviousHash: "abc123",
	}

	tests := []struct {
		name   string
		mutate func(b *Block)
	}{
		{"different proof", func(b *Block) { b.Proof++ }},
		{"different previous hash", func(b *Block) { b.PreviousHash = "def456" }},
		{"different amount", func(b *Block) { b.Transactions[0].Amount = 11 }},
		{"extra transaction", func(b *Block) {
			b.Transactions = append(b.Transactions, Transaction{Sender: "bob", Recipient: "carol", Amount: 1})
		}},
	}

	baseHash := HashBlock(&base)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modified := copyBlock(base)
			tt.mutate(&modified)
			if HashBlock(&modified) == baseHash {
				t.Error("Modified block should not hash to the same digest")
			}
		})
	}
}
