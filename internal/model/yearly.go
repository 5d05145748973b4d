package model

// YearlyData is one immutable snapshot of the household's finances. The engine
// emits them in chronological order, money fields rounded to 2 decimals.
type YearlyData struct {
	Year                  int     `json:"year"`
	Age                   int     `json:"age"`
	AverageSalary         float64 `json:"average_salary"`
	MonthlySalary         float64 `json:"monthly_salary"`
	ContributionBase      float64 `json:"contribution_base"`
	PensionContribution   float64 `json:"pension_contribution"`
	HousingFundAccount    float64 `json:"housing_fund_account"`
	PensionYears          int     `json:"pension_years"`
	MedicalYears          int     `json:"medical_years"`
	CanReceivePension     bool    `json:"can_receive_pension"`
	AnnualPensionReceived float64 `json:"annual_pension_received"`
	LivingExpense         float64 `json:"living_expense"`
	Savings               float64 `json:"savings"`
	TotalAssets           float64 `json:"total_assets"`
	IsRetirementYear      bool    `json:"is_retirement_year"`
	IsPensionStartYear    bool    `json:"is_pension_start_year"`
}
