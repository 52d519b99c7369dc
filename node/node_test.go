package node

import (
	"testing"
)

func TestNewGeneratesIdentity(t *testing.T) {
	n := New(Config{Listen: ":0"})

	// A UUID with the dashes stripped: 32 hex characters.
	if len(n.ID) != 32 {
		t.Errorf("Expected a 32-character identifier, got %q", n.ID)
	}

	other := New(Config{Listen: ":0"})
	if other.ID == n.ID {
		t.Error("Identifiers should be unique per node")
	}
}

func TestNewKeepsConfiguredIdentity(t *testing.T) {
	n := New(Config{ID: "configured-id", Listen: ":0"})
	if n.ID != "configured-id" {
		t.Errorf("Configured id should win, got %q", n.ID)
	}
}

func TestNewNodeIsFullyWired(t *testing.T) {
	n := New(Config{Listen: ":0"})

	if n.Ledger() == nil || n.Registry() == nil || n.API() == nil {
		t.Fatal("Node components should all be constructed")
	}
	if n.Ledger().Height() != 1 {
		t.Errorf("Fresh node should start at genesis, height %d", n.Ledger().Height())
	}
	if n.Registry().Len() != 0 {
		t.Errorf("Seed peers are registered at Start, not construction; got %d", n.Registry().Len())
	}
}
