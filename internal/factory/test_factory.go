package factory

import (
	"github.com/mcoot/gameutils/internal/storage/memory"
	"github.com/mcoot/gameutils/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	MemoryStorage *memory.Storage
}

// NewTestApp creates a memory-backed App that logs nowhere
func NewTestApp() *TestApp {
	store := memory.New()
	return &TestApp{
		App:           newWithDependencies(store, testutil.NopLogger()),
		MemoryStorage: store,
	}
}

// SeedPlayers creates a few well-known players with automatic ids
func (t *TestApp) SeedPlayers() {
	t.Registry.CreatePlayer("Ada", "Lovelace", "countess")
	t.Registry.CreatePlayer("Alan", "Turing", "prof")
	t.Registry.CreatePlayer("Grace", "Hopper", "amazing")
}
