package cache

import (
	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

// S is the process-wide cache store. Its lifecycle is owned by the process:
// constructed empty at startup, never persisted.
var S *ristretto_store.RistrettoStore

func NewStore() error {
	inst, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     1 << 28,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	S = ristretto_store.NewRistretto(inst)

	return nil
}
