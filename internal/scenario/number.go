package scenario

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// parseNumber accepts plain decimals, a decimal comma ("0,25") and Saaty
// style fractions ("1/3").
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, eris.New("empty value")
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseNumber(num)
		if err != nil {
			return 0, eris.Wrapf(err, "numerator of %q", s)
		}
		d, err := parseNumber(den)
		if err != nil {
			return 0, eris.Wrapf(err, "denominator of %q", s)
		}
		if d == 0 {
			return 0, eris.Errorf("zero denominator in %q", s)
		}
		return n / d, nil
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "parse number %q", s)
	}
	return v, nil
}
