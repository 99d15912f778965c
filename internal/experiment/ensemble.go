package experiment

import (
	"context"
	"sync"

	"github.com/san-kum/freude/internal/config"
)

// Ensemble runs copies of a base configuration concurrently, one per seed
// starting at SeedStart. Every run builds its own system and stepper.
type Ensemble struct {
	Registry  *Registry
	Runs      int
	SeedStart uint64
}

// Run returns the results in seed order. When any run fails, the first
// error by seed order is returned along with every result.
func (e *Ensemble) Run(ctx context.Context, base *config.Config) ([]*Result, error) {
	results := make([]*Result, e.Runs)
	errs := make([]error, e.Runs)

	var wg sync.WaitGroup
	for i := 0; i < e.Runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			cfg := base.Clone()
			cfg.Seed = e.SeedStart + uint64(idx)
			results[idx], errs[idx] = e.Registry.Run(ctx, cfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
