package model

type ProjectionResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Years               []YearlyData        `json:"years"`
}

type ScenarioResponse struct {
	CalculationMetadata CalculationMetadata     `json:"calculation_metadata"`
	Scenarios           map[string][]YearlyData `json:"scenarios"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
