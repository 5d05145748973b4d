package model

// FinanceParams bundles the economic assumptions and opening balances for one
// projection run. The engine treats it as read-only; collaborators that build
// it from presets or spreadsheet imports must supply every field.
type FinanceParams struct {
	StartYear             int `json:"start_year"`
	StartWorkYear         int `json:"start_work_year"`
	CurrentAge            int `json:"current_age"`
	RetirementAge         int `json:"retirement_age"`
	OfficialRetirementAge int `json:"official_retirement_age"`

	InitialMonthlySalary float64 `json:"initial_monthly_salary"`
	LocalAverageSalary   float64 `json:"local_average_salary"`
	SalaryGrowthRate     float64 `json:"salary_growth_rate"`

	PensionReplacementRatio float64 `json:"pension_replacement_ratio"`
	ContributionRatio       float64 `json:"contribution_ratio"`

	LivingExpenseRatio float64 `json:"living_expense_ratio"`

	DepositRate   float64 `json:"deposit_rate"`
	InflationRate float64 `json:"inflation_rate"`

	InitialSavings     float64 `json:"initial_savings"`
	InitialHousingFund float64 `json:"initial_housing_fund"`
	HousingFundRate    float64 `json:"housing_fund_rate"`

	// Carried for wire compatibility with older presets; the current rule
	// set does not include it in the net-worth formula.
	InitialPersonalPension float64 `json:"initial_personal_pension"`
}
