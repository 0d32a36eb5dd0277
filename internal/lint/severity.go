package lint

// Severity ranks lint findings. SeverityError is the most severe level and
// SeverityNone the least; comparisons must go through MoreSevere rather than
// the numeric values, so the ordering direction is fixed in exactly one
// place.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNone
)

// String returns the level name used in printed violations.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// MoreSevere reports whether s outranks other. ERROR outranks WARNING,
// WARNING outranks NONE.
func (s Severity) MoreSevere(other Severity) bool {
	return s < other
}

// MostSevere returns the highest severity among the violations, or
// SeverityNone for an empty list.
func MostSevere(violations []Violation) Severity {
	max := SeverityNone
	for _, v := range violations {
		if v.Severity.MoreSevere(max) {
			max = v.Severity
		}
	}
	return max
}
