package model

// Severity is the qualitative risk tier of a single scenario, and also the
// type of the aggregate verdict. Keep these values stable; they appear in API
// responses and CSV output.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities from low (0) to critical (3). Unknown values rank
// below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// ImpactDirection is the sign of a scenario's effect on the lender's position.
type ImpactDirection string

const (
	ImpactPositive ImpactDirection = "positive"
	ImpactNegative ImpactDirection = "negative"
	ImpactNeutral  ImpactDirection = "neutral"
)

// StressFactor tags one scenario: a human label that includes the perturbation
// magnitude, a short description, and the direction and tier of its effect.
type StressFactor struct {
	Name        string
	Description string
	Impact      ImpactDirection
	Severity    Severity
}
