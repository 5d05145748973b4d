package model

// ProjectionRequest carries one parameter set. ProjectionYears overrides the
// server's default horizon when present.
type ProjectionRequest struct {
	Parameters      *FinanceParams `json:"parameters"`
	ProjectionYears *int           `json:"projection_years,omitempty"`
}

// ScenarioRequest carries a batch of named parameter sets for comparison.
type ScenarioRequest struct {
	Scenarios       map[string]FinanceParams `json:"scenarios"`
	ProjectionYears *int                     `json:"projection_years,omitempty"`
}
