package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"propdesk/domain"
	"propdesk/format"
)

type LoanService struct {
	strict bool
}

// NewLoanService creates a LoanService. With strict set, positive inputs
// outside the product bounds are reported as out of range.
func NewLoanService(strict bool) *LoanService {
	return &LoanService{strict: strict}
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func invalid(status domain.LoanStatus, msg string) domain.LoanOutcome {
	return domain.LoanOutcome{Status: status, Message: msg}
}

// Compute applies reducing-balance EMI amortization to input. Every failure
// is reported through the outcome status.
func (s *LoanService) Compute(input domain.LoanInput) domain.LoanOutcome {
	if !finitePositive(input.Principal) ||
		!finitePositive(input.AnnualRatePercent) ||
		!finitePositive(input.TenureYears) {
		return invalid(domain.LoanInvalid, InvalidInputMessage)
	}

	if s.strict {
		if msg := checkBounds(input); msg != "" {
			return invalid(domain.LoanOutOfRange, msg)
		}
	}

	monthlyRate := input.AnnualRatePercent / 12 / 100
	months := input.TenureYears * 12
	// (1+r)^n - 1 without cancellation for tiny r.
	growthLessOne := math.Expm1(months * math.Log1p(monthlyRate))

	emi := input.Principal * monthlyRate * (growthLessOne + 1) / growthLessOne
	total := emi * months
	interest := total - input.Principal

	if math.IsNaN(emi) || math.IsInf(emi, 0) || math.IsNaN(total) || math.IsInf(total, 0) ||
		total <= 0 || interest < 0 {
		return invalid(domain.LoanNonFinite, InvalidInputMessage)
	}

	return domain.LoanOutcome{
		Status: domain.LoanOK,
		Result: domain.LoanResult{
			Principal:          input.Principal,
			NumberOfMonths:     months,
			MonthlyInstallment: emi,
			TotalInterest:      interest,
			TotalPayment:       total,
			PrincipalShare:     input.Principal / total * 100,
			InterestShare:      interest / total * 100,
		},
	}
}

func checkBounds(input domain.LoanInput) string {
	switch {
	case input.Principal < MinStrictPrincipal || input.Principal > MaxStrictPrincipal:
		return fmt.Sprintf("Loan amount must be between %s and %s",
			format.FormatINR(MinStrictPrincipal), format.FormatINR(MaxStrictPrincipal))
	case input.TenureYears < MinStrictTenureYears || input.TenureYears > MaxStrictTenureYears:
		return fmt.Sprintf("Tenure must be between %g and %g years", MinStrictTenureYears, MaxStrictTenureYears)
	case input.AnnualRatePercent > MaxStrictRatePercent:
		return fmt.Sprintf("Interest rate must be above 0%% and at most %g%%", MaxStrictRatePercent)
	}
	return ""
}

// DeriveChartSlices projects a result into the principal/interest series
// drawn by the donut chart.
func DeriveChartSlices(result domain.LoanResult) []domain.ChartSlice {
	return []domain.ChartSlice{
		{Label: PrincipalLabel, Value: result.Principal, Percent: result.PrincipalShare},
		{Label: InterestLabel, Value: result.TotalInterest, Percent: result.InterestShare},
	}
}

// Evaluate cleans the raw field values, computes and builds the screen view.
func (s *LoanService) Evaluate(raw domain.RawLoanInput) domain.LoanView {
	principal, principalEcho := format.CleanAmount(raw.Principal)
	rate, rateEcho := format.CleanDecimal(raw.Rate)
	tenure, tenureEcho := format.CleanDecimal(raw.Tenure)

	return s.present(domain.LoanInput{
		Principal:         principal,
		AnnualRatePercent: rate,
		TenureYears:       tenure,
	}, domain.RawLoanInput{
		Principal: principalEcho,
		Rate:      rateEcho,
		Tenure:    tenureEcho,
	})
}

// View builds the screen view for already numeric input.
func (s *LoanService) View(input domain.LoanInput) domain.LoanView {
	return s.present(input, domain.RawLoanInput{
		Principal: groupedEcho(input.Principal),
		Rate:      strconv.FormatFloat(input.AnnualRatePercent, 'f', -1, 64),
		Tenure:    strconv.FormatFloat(input.TenureYears, 'f', -1, 64),
	})
}

// groupedEcho prints v the way the amount field shows it: Indian grouping on
// the whole part, any fraction kept as typed.
func groupedEcho(v float64) string {
	plain := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return plain
	}
	sign := ""
	if strings.HasPrefix(plain, "-") {
		sign, plain = "-", plain[1:]
	}
	whole, frac, hasFrac := strings.Cut(plain, ".")
	out := sign + format.GroupIndian(whole)
	if hasFrac {
		out += "." + frac
	}
	return out
}

func (s *LoanService) present(input domain.LoanInput, echo domain.RawLoanInput) domain.LoanView {
	outcome := s.Compute(input)

	view := domain.LoanView{
		Status:  outcome.Status,
		Message: outcome.Message,
		Input:   echo,
	}
	if !outcome.OK() {
		return view
	}

	res := outcome.Result
	view.Result = &res
	view.Display = &domain.LoanDisplay{
		Principal:          format.FormatINR(res.Principal),
		MonthlyInstallment: format.FormatINR(res.MonthlyInstallment),
		TotalInterest:      format.FormatINR(res.TotalInterest),
		TotalPayment:       format.FormatINR(res.TotalPayment),
	}
	view.Chart = DeriveChartSlices(res)
	return view
}
