package topsis

import "fmt"

// Verdict is the informational band of a closeness coefficient.
type Verdict int

const (
	// Poor is C < 0.40.
	Poor Verdict = iota
	// Good is 0.40 ≤ C ≤ 0.70.
	Good
	// VeryGood is C > 0.70.
	VeryGood
)

// Band limits.
const (
	VeryGoodAbove = 0.70
	GoodFrom      = 0.40
)

// Classify returns the band of c.
func Classify(c float64) Verdict {
	switch {
	case c > VeryGoodAbove:
		return VeryGood
	case c >= GoodFrom:
		return Good
	default:
		return Poor
	}
}

// String returns the English label.
func (v Verdict) String() string {
	switch v {
	case VeryGood:
		return "Very Good"
	case Good:
		return "Good"
	case Poor:
		return "Poor"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Localized returns the Indonesian label shown by the ranking page.
func (v Verdict) Localized() string {
	switch v {
	case VeryGood:
		return "Sangat Baik"
	case Good:
		return "Baik"
	case Poor:
		return "Terburuk"
	default:
		return v.String()
	}
}

// MarshalText encodes the English label.
func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
