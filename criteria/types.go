package criteria

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCode indicates a criterion without an identifier.
	ErrEmptyCode = errors.New("criteria: empty criterion code")

	// ErrDuplicateCode indicates a code registered twice.
	ErrDuplicateCode = errors.New("criteria: duplicate criterion code")

	// ErrUnknownCode indicates a lookup for a code that is not registered.
	ErrUnknownCode = errors.New("criteria: unknown criterion code")

	// ErrInvalidPolarity indicates a polarity value other than Benefit or Cost.
	ErrInvalidPolarity = errors.New("criteria: invalid polarity")
)

// Polarity tells whether higher raw values are better (Benefit) or worse (Cost).
type Polarity int

const (
	// Benefit criteria prefer larger values.
	Benefit Polarity = iota + 1
	// Cost criteria prefer smaller values.
	Cost
)

// String returns "benefit" or "cost".
func (p Polarity) String() string {
	switch p {
	case Benefit:
		return "benefit"
	case Cost:
		return "cost"
	default:
		return fmt.Sprintf("polarity(%d)", int(p))
	}
}

// Valid reports whether p is Benefit or Cost.
func (p Polarity) Valid() bool { return p == Benefit || p == Cost }

// ParsePolarity accepts "benefit"/"cost" in any case, plus the short forms
// "b"/"c" and the Indonesian spreadsheet labels "keuntungan"/"biaya".
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "benefit", "b", "keuntungan":
		return Benefit, nil
	case "cost", "c", "biaya":
		return Cost, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidPolarity, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolarity, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Polarity) UnmarshalText(b []byte) error {
	v, err := ParsePolarity(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Criterion is a single decision criterion.
type Criterion struct {
	Code     string   `json:"code" yaml:"code"`
	Label    string   `json:"label" yaml:"label"`
	Polarity Polarity `json:"polarity" yaml:"polarity"`
}

// Validate checks that the code is set and the polarity is known.
func (c Criterion) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ErrEmptyCode
	}
	if !c.Polarity.Valid() {
		return fmt.Errorf("%w: criterion %q", ErrInvalidPolarity, c.Code)
	}
	return nil
}
