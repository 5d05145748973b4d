package engine

import (
	"sync"

	"finance-engine/internal/model"
)

// RunScenarios projects every named parameter set over the default horizon.
// Runs are fully independent, so they fan out on goroutines; the result for a
// name is byte-identical to calling Project on that parameter set alone.
func RunScenarios(scenarios map[string]model.FinanceParams) map[string][]model.YearlyData {
	results := make(map[string][]model.YearlyData, len(scenarios))

	var wg sync.WaitGroup
	var mu sync.Mutex
	for name, params := range scenarios {
		wg.Add(1)
		go func(name string, params model.FinanceParams) {
			defer wg.Done()
			seq := Project(&params, DefaultHorizonYears)
			mu.Lock()
			results[name] = seq
			mu.Unlock()
		}(name, params)
	}
	wg.Wait()

	return results
}
