package engine

import (
	"math"

	"finance-engine/internal/model"
)

// DefaultHorizonYears is the horizon used when the caller does not ask for a
// specific one. A projection covers horizon+1 calendar years (year 0 included).
const DefaultHorizonYears = 60

// Statutory policy numbers. Kept as named constants so a rule change is a
// one-line diff.
const (
	minPensionYears   = 20 // minimum pension contribution years
	minMedicalYears   = 25 // minimum medical contribution years
	pensionReceiveAge = 60 // age gate for receiving pension benefits

	combinedContributionRate = 0.30 // 20% pension + 10% medical, modeled as one rate
	housingFundPayrollRate   = 0.07 // employer + employee housing contribution

	monthsPerYear = 12
)

// walkState is the mutable balance sheet carried across years. It is engine
// internal; callers only ever see the emitted YearlyData snapshots.
type walkState struct {
	monthlySalary float64
	averageSalary float64
	savings       float64
	housingFund   float64
	pensionYears  int
	medicalYears  int
}

func newWalkState(p *model.FinanceParams) walkState {
	accrued := p.StartYear - p.StartWorkYear
	if accrued < 0 {
		accrued = 0
	}
	return walkState{
		monthlySalary: p.InitialMonthlySalary,
		averageSalary: p.LocalAverageSalary,
		savings:       p.InitialSavings,
		housingFund:   p.InitialHousingFund,
		pensionYears:  accrued,
		medicalYears:  accrued,
	}
}

// Project folds the per-year transition over the horizon and returns one
// snapshot per year, in chronological order. It is pure and total: it never
// mutates params, performs no I/O, and produces output for any numeric input —
// negative savings are a meaningful result (a household out of money), not an
// error.
func Project(params *model.FinanceParams, projectionYears int) []model.YearlyData {
	if projectionYears < 0 {
		return nil
	}

	data := make([]model.YearlyData, 0, projectionYears+1)
	state := newWalkState(params)
	for i := 0; i <= projectionYears; i++ {
		data = append(data, state.step(params, i))
	}
	return data
}

// step advances the carried state by one year and emits that year's snapshot.
// The computation order is load-bearing: later lines read balances mutated
// earlier in the same step. Carried state keeps full float precision; rounding
// happens once, at emission.
func (s *walkState) step(p *model.FinanceParams, i int) model.YearlyData {
	year := p.StartYear + i
	age := p.CurrentAge + i
	isRetired := age >= p.RetirementAge

	// Personal salary grows until retirement; the reference wage (the local
	// average) tracks the macro wage index and grows every year.
	if !isRetired && i > 0 {
		s.monthlySalary *= 1 + p.SalaryGrowthRate/100
	}
	if i > 0 {
		s.averageSalary *= 1 + p.SalaryGrowthRate/100
	}

	// A retiree below the legal minimum contribution years keeps paying,
	// with the reference wage as the base.
	needPayPension := s.pensionYears < minPensionYears
	needPayMedical := s.medicalYears < minMedicalYears
	needContinuePay := isRetired && (needPayPension || needPayMedical)

	var contributionBase float64
	switch {
	case !isRetired:
		contributionBase = s.monthlySalary * p.ContributionRatio
	case needContinuePay:
		contributionBase = s.averageSalary * p.ContributionRatio
	}

	var pensionContribution float64
	if !isRetired || needContinuePay {
		pensionContribution = contributionBase * combinedContributionRate * monthsPerYear
		if s.pensionYears < minPensionYears {
			s.pensionYears++
		}
		if s.medicalYears < minMedicalYears {
			s.medicalYears++
		}
	}

	// Housing fund accrues until 60, then the whole balance moves into
	// savings in the age-60 year — a single lump-sum liquidation.
	if age < pensionReceiveAge && i > 0 {
		s.housingFund = s.housingFund*(1+p.HousingFundRate/100) + s.monthlySalary*housingFundPayrollRate*monthsPerYear
	}
	if age == pensionReceiveAge && s.housingFund > 0 {
		s.savings += s.housingFund
		s.housingFund = 0
	}

	monthlyExpense := s.averageSalary * p.LivingExpenseRatio
	if i > 0 {
		monthlyExpense *= math.Pow(1+p.InflationRate/100, float64(i))
	}
	livingExpense := monthlyExpense * monthsPerYear

	var income float64
	if !isRetired {
		income = s.monthlySalary * monthsPerYear
	}

	canReceivePension := age >= pensionReceiveAge && s.pensionYears >= minPensionYears
	var pensionBenefit float64
	if canReceivePension {
		pensionBenefit = s.averageSalary * p.PensionReplacementRatio * monthsPerYear
	}

	// Interest applies to the prior balance before the year's net flow lands
	// (end-of-year contribution convention).
	annualFlow := income + pensionBenefit - pensionContribution - livingExpense
	s.savings = s.savings*(1+p.DepositRate/100) + annualFlow

	salaryShown := s.monthlySalary
	if isRetired {
		salaryShown = 0
	}

	return model.YearlyData{
		Year:                  year,
		Age:                   age,
		AverageSalary:         round2(s.averageSalary),
		MonthlySalary:         round2(salaryShown),
		ContributionBase:      round2(contributionBase),
		PensionContribution:   round2(pensionContribution),
		HousingFundAccount:    round2(s.housingFund),
		PensionYears:          s.pensionYears,
		MedicalYears:          s.medicalYears,
		CanReceivePension:     canReceivePension,
		AnnualPensionReceived: round2(pensionBenefit),
		LivingExpense:         round2(livingExpense),
		Savings:               round2(s.savings),
		TotalAssets:           round2(s.savings + s.housingFund),
		IsRetirementYear:      age == p.RetirementAge,
		IsPensionStartYear:    age == pensionReceiveAge && canReceivePension,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
