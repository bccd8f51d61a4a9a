package service

const (
	InvalidInputMessage = "Invalid Input"

	// Bounds applied only when strict validation is enabled.
	MinStrictPrincipal   = 1_000_000.0   // 10 lakh
	MaxStrictPrincipal   = 100_000_000.0 // 10 crore
	MinStrictTenureYears = 1.0
	MaxStrictTenureYears = 30.0
	MaxStrictRatePercent = 100.0

	PrincipalLabel = "Principal"
	InterestLabel  = "Interest"
)
