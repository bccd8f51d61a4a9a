package domain

// LoanInput is rebuilt on every edit of one of the three calculator fields.
type LoanInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureYears       float64 `json:"tenure_years"`
}

// RawLoanInput holds the calculator fields exactly as the user typed them.
type RawLoanInput struct {
	Principal string `json:"principal"`
	Rate      string `json:"rate"`
	Tenure    string `json:"tenure"`
}

// LoanResult keeps unrounded values; rounding happens when presenting.
type LoanResult struct {
	Principal          float64 `json:"principal"`
	NumberOfMonths     float64 `json:"number_of_months"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	TotalInterest      float64 `json:"total_interest"`
	TotalPayment       float64 `json:"total_payment"`
	PrincipalShare     float64 `json:"principal_share"`
	InterestShare      float64 `json:"interest_share"`
}

type LoanStatus string

const (
	LoanOK         LoanStatus = "ok"
	LoanInvalid    LoanStatus = "invalid"
	LoanOutOfRange LoanStatus = "out_of_range"
	LoanNonFinite  LoanStatus = "non_finite"
)

// LoanOutcome is the tagged result of a computation. Result is only
// meaningful when Status is LoanOK.
type LoanOutcome struct {
	Status  LoanStatus
	Message string
	Result  LoanResult
}

func (o LoanOutcome) OK() bool {
	return o.Status == LoanOK
}

type ChartSlice struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

type LoanDisplay struct {
	Principal          string `json:"principal"`
	MonthlyInstallment string `json:"monthly_installment"`
	TotalInterest      string `json:"total_interest"`
	TotalPayment       string `json:"total_payment"`
}

// LoanView is what the calculator screen renders after an edit.
type LoanView struct {
	Status  LoanStatus   `json:"status"`
	Message string       `json:"message,omitempty"`
	Input   RawLoanInput `json:"input"`
	Result  *LoanResult  `json:"result,omitempty"`
	Display *LoanDisplay `json:"display,omitempty"`
	Chart   []ChartSlice `json:"chart,omitempty"`
}
