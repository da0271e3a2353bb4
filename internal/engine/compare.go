package engine

// Strategy selects how the search explores placements.
type Strategy string

const (
	StrategyStack     Strategy = "stack"     // Explicit LIFO work list
	StrategyRecursive Strategy = "recursive" // Call-stack recursion
)

// ComparisonScenario defines a named solver configuration to compare.
type ComparisonScenario struct {
	Name     string
	Strategy Strategy
}

// ComparisonResult holds the search outcome and summary statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario       ComparisonScenario
	Result         Result
	EndStateCount  int
	TriplePackings int
}

// CompareStrategies runs each scenario against the same candidate set and
// returns the results in scenario order. Exploration order must not affect
// the canonical result set, so this doubles as a consistency check between
// the two search formulations.
func CompareStrategies(scenarios []ComparisonScenario) []ComparisonResult {
	solver := New()

	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		var res Result
		if scenario.Strategy == StrategyRecursive {
			res = solver.SolveRecursive()
		} else {
			res = solver.Solve()
		}

		results = append(results, ComparisonResult{
			Scenario:       scenario,
			Result:         res,
			EndStateCount:  len(res.EndStates),
			TriplePackings: len(res.WithPieceCount(3)),
		})
	}
	return results
}

// DefaultScenarios returns one scenario per search strategy.
func DefaultScenarios() []ComparisonScenario {
	return []ComparisonScenario{
		{Name: "Explicit stack", Strategy: StrategyStack},
		{Name: "Recursive", Strategy: StrategyRecursive},
	}
}
