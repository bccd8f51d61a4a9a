package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/domain"
)

func compute(t *testing.T, s *LoanService, p, r, years float64) domain.LoanResult {
	t.Helper()
	out := s.Compute(domain.LoanInput{Principal: p, AnnualRatePercent: r, TenureYears: years})
	require.Equal(t, domain.LoanOK, out.Status, "compute(%v, %v, %v)", p, r, years)
	return out.Result
}

func TestCompute_FiveLakhFiveYears(t *testing.T) {
	res := compute(t, NewLoanService(false), 500000, 8.75, 5)

	assert.InDelta(t, 10318.62, res.MonthlyInstallment, 0.01)
	assert.InDelta(t, 619116.98, res.TotalPayment, 0.01)
	assert.InDelta(t, 119116.98, res.TotalInterest, 0.01)
	assert.Equal(t, 60.0, res.NumberOfMonths)
}

func TestCompute_FiftyLakhTwoYears(t *testing.T) {
	res := compute(t, NewLoanService(false), 5000000, 8.75, 2)

	assert.InDelta(t, 227850.62, res.MonthlyInstallment, 0.01)
	assert.InDelta(t, 5468414.77, res.TotalPayment, 0.01)
	assert.InDelta(t, 468414.77, res.TotalInterest, 0.01)
}

func TestCompute_AmortizationIdentityAndShares(t *testing.T) {
	s := NewLoanService(false)
	for _, p := range []float64{1, 1500, 500000, 7_500_000, 250_000_000} {
		for _, r := range []float64{0.5, 6.9, 8.75, 14, 36} {
			for _, years := range []float64{0.5, 1, 5, 12.5, 30} {
				res := compute(t, s, p, r, years)

				assert.InEpsilon(t, res.MonthlyInstallment*res.NumberOfMonths, res.TotalPayment, 1e-6)
				assert.InDelta(t, res.TotalPayment-p, res.TotalInterest, 1e-6*res.TotalPayment)
				assert.InDelta(t, 100.0, res.PrincipalShare+res.InterestShare, 1e-9)
			}
		}
	}
}

func TestCompute_Monotonicity(t *testing.T) {
	s := NewLoanService(false)

	prev := 0.0
	for _, p := range []float64{1000, 10_000, 100_000, 1_000_000, 10_000_000} {
		emi := compute(t, s, p, 8.75, 10).MonthlyInstallment
		assert.Greater(t, emi, prev, "emi should grow with principal")
		prev = emi
	}

	prev = 0
	for _, r := range []float64{0.1, 1, 5, 8.75, 12, 24} {
		emi := compute(t, s, 1_000_000, r, 10).MonthlyInstallment
		assert.Greater(t, emi, prev, "emi should grow with rate")
		prev = emi
	}

	prevInterest := 0.0
	prevEMI := math.Inf(1)
	for _, years := range []float64{1, 2, 5, 10, 20, 30} {
		res := compute(t, s, 1_000_000, 8.75, years)
		assert.Greater(t, res.TotalInterest, prevInterest, "interest should grow with tenure")
		assert.Less(t, res.MonthlyInstallment, prevEMI, "emi should shrink with tenure")
		prevInterest = res.TotalInterest
		prevEMI = res.MonthlyInstallment
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	s := NewLoanService(false)
	cases := []domain.LoanInput{
		{Principal: 0, AnnualRatePercent: 8.75, TenureYears: 5},
		{Principal: 500000, AnnualRatePercent: 0, TenureYears: 5},
		{Principal: 500000, AnnualRatePercent: 8.75, TenureYears: 0},
		{Principal: -5, AnnualRatePercent: 8.75, TenureYears: 5},
		{Principal: 500000, AnnualRatePercent: -1, TenureYears: 5},
		{Principal: math.NaN(), AnnualRatePercent: 8.75, TenureYears: 5},
		{Principal: math.Inf(1), AnnualRatePercent: 8.75, TenureYears: 5},
		{Principal: 500000, AnnualRatePercent: 8.75, TenureYears: math.Inf(1)},
	}
	for _, in := range cases {
		out := s.Compute(in)
		assert.Equal(t, domain.LoanInvalid, out.Status, "%+v", in)
		assert.Equal(t, InvalidInputMessage, out.Message)
		assert.Equal(t, domain.LoanResult{}, out.Result)
		assert.False(t, out.OK())
	}
}

func TestCompute_OverflowingRateIsNonFinite(t *testing.T) {
	out := NewLoanService(false).Compute(domain.LoanInput{
		Principal:         1_000_000,
		AnnualRatePercent: 1e300,
		TenureYears:       30,
	})

	assert.Equal(t, domain.LoanNonFinite, out.Status)
	assert.Equal(t, InvalidInputMessage, out.Message)
	assert.Equal(t, domain.LoanResult{}, out.Result)
}

func TestCompute_TinyRateStaysConsistent(t *testing.T) {
	s := NewLoanService(false)

	prev := 0.0
	for _, rate := range []float64{1e-12, 1e-9, 1e-6, 1e-3} {
		res := compute(t, s, 500000, rate, 5)

		assert.GreaterOrEqual(t, res.TotalInterest, 0.0, "rate %v", rate)
		assert.GreaterOrEqual(t, res.TotalPayment, 500000.0, "rate %v", rate)
		assert.LessOrEqual(t, res.PrincipalShare, 100.0, "rate %v", rate)
		assert.GreaterOrEqual(t, res.InterestShare, 0.0, "rate %v", rate)
		assert.InDelta(t, 500000.0/60, res.MonthlyInstallment, 1)
		assert.Greater(t, res.MonthlyInstallment, prev, "emi should grow with rate")
		prev = res.MonthlyInstallment
	}
}

func TestCompute_FractionalTenure(t *testing.T) {
	res := compute(t, NewLoanService(false), 1_200_000, 9, 2.5)
	assert.Equal(t, 30.0, res.NumberOfMonths)
	assert.Greater(t, res.MonthlyInstallment, 1_200_000.0/30)
}

func TestCompute_StrictBounds(t *testing.T) {
	strict := NewLoanService(true)

	cases := []struct {
		in      domain.LoanInput
		message string
	}{
		{domain.LoanInput{Principal: 500000, AnnualRatePercent: 8.75, TenureYears: 5},
			"Loan amount must be between ₹10,00,000 and ₹10,00,00,000"},
		{domain.LoanInput{Principal: 200_000_000, AnnualRatePercent: 8.75, TenureYears: 5},
			"Loan amount must be between ₹10,00,000 and ₹10,00,00,000"},
		{domain.LoanInput{Principal: 5_000_000, AnnualRatePercent: 8.75, TenureYears: 31},
			"Tenure must be between 1 and 30 years"},
		{domain.LoanInput{Principal: 5_000_000, AnnualRatePercent: 8.75, TenureYears: 0.5},
			"Tenure must be between 1 and 30 years"},
		{domain.LoanInput{Principal: 5_000_000, AnnualRatePercent: 120, TenureYears: 5},
			"Interest rate must be above 0% and at most 100%"},
	}
	for _, tc := range cases {
		out := strict.Compute(tc.in)
		assert.Equal(t, domain.LoanOutOfRange, out.Status, "%+v", tc.in)
		assert.Equal(t, tc.message, out.Message)
	}

	out := strict.Compute(domain.LoanInput{Principal: 5_000_000, AnnualRatePercent: 8.75, TenureYears: 2})
	assert.True(t, out.OK())

	assert.Equal(t, domain.LoanInvalid, strict.Compute(domain.LoanInput{}).Status,
		"missing input stays invalid, not out of range")

	relaxed := NewLoanService(false).Compute(domain.LoanInput{Principal: 500000, AnnualRatePercent: 8.75, TenureYears: 5})
	assert.True(t, relaxed.OK())
}

func TestDeriveChartSlices(t *testing.T) {
	res := compute(t, NewLoanService(false), 500000, 8.75, 5)

	slices := DeriveChartSlices(res)

	require.Len(t, slices, 2)
	assert.Equal(t, PrincipalLabel, slices[0].Label)
	assert.Equal(t, 500000.0, slices[0].Value)
	assert.Equal(t, InterestLabel, slices[1].Label)
	assert.Equal(t, res.TotalInterest, slices[1].Value)
	assert.InDelta(t, 100.0, slices[0].Percent+slices[1].Percent, 1e-9)
	assert.InDelta(t, 80.76, slices[0].Percent, 0.01)
}

func TestEvaluate_RawInput(t *testing.T) {
	view := NewLoanService(false).Evaluate(domain.RawLoanInput{
		Principal: "5,00,000",
		Rate:      "8.759",
		Tenure:    "5 yrs",
	})

	require.Equal(t, domain.LoanOK, view.Status)
	assert.Equal(t, "5,00,000", view.Input.Principal)
	assert.Equal(t, "8.75", view.Input.Rate)
	assert.Equal(t, "5", view.Input.Tenure)
	require.NotNil(t, view.Display)
	assert.Equal(t, "₹5,00,000", view.Display.Principal)
	assert.Equal(t, "₹10,319", view.Display.MonthlyInstallment)
	assert.Equal(t, "₹6,19,117", view.Display.TotalPayment)
	assert.Equal(t, "₹1,19,117", view.Display.TotalInterest)
	assert.Len(t, view.Chart, 2)
}

func TestEvaluate_IncompleteInput(t *testing.T) {
	view := NewLoanService(false).Evaluate(domain.RawLoanInput{Principal: "500000", Rate: "", Tenure: "5"})

	assert.Equal(t, domain.LoanInvalid, view.Status)
	assert.Equal(t, InvalidInputMessage, view.Message)
	assert.Nil(t, view.Result)
	assert.Nil(t, view.Display)
	assert.Empty(t, view.Chart)
	assert.Equal(t, "5,00,000", view.Input.Principal)
}

func TestView_NumericInput(t *testing.T) {
	view := NewLoanService(false).View(domain.LoanInput{Principal: 5000000, AnnualRatePercent: 8.75, TenureYears: 2})

	require.Equal(t, domain.LoanOK, view.Status)
	assert.Equal(t, "50,00,000", view.Input.Principal)
	assert.Equal(t, "8.75", view.Input.Rate)
	assert.Equal(t, "₹2,27,851", view.Display.MonthlyInstallment)
}

func TestView_FractionalPrincipalEcho(t *testing.T) {
	view := NewLoanService(false).View(domain.LoanInput{Principal: 1250000.5, AnnualRatePercent: 9, TenureYears: 1.5})

	assert.Equal(t, "12,50,000.5", view.Input.Principal)
	assert.Equal(t, "1.5", view.Input.Tenure)
}
