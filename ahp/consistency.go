package ahp

import "fmt"

// randomIndex holds Saaty's random consistency index for N = 1..10.
var randomIndex = map[int]float64{
	1:  0,
	2:  0,
	3:  0.58,
	4:  0.90,
	5:  1.12,
	6:  1.24,
	7:  1.32,
	8:  1.41,
	9:  1.45,
	10: 1.49,
}

// RandomIndex returns the built-in random index for n criteria.
// ok is false for sizes outside 1..10.
func RandomIndex(n int) (ri float64, ok bool) {
	ri, ok = randomIndex[n]
	return ri, ok
}

// ConsistencyReport describes how consistent a set of pairwise judgments is.
type ConsistencyReport struct {
	N          int     `json:"n"`
	LambdaMax  float64 `json:"lambda_max"`
	CI         float64 `json:"ci"`
	RI         float64 `json:"ri"`
	CR         float64 `json:"cr"`
	Threshold  float64 `json:"threshold"`
	Acceptable bool    `json:"acceptable"`
	Method     string  `json:"method"`
}

// String renders the report on one line for logs and CLI output.
func (r ConsistencyReport) String() string {
	verdict := "acceptable"
	if !r.Acceptable {
		verdict = "not acceptable"
	}
	return fmt.Sprintf("n=%d λmax=%.4f CI=%.4f RI=%.2f CR=%.4f (%s, threshold %.2f)",
		r.N, r.LambdaMax, r.CI, r.RI, r.CR, verdict, r.Threshold)
}

// consistency computes CI, CR and the verdict from λmax.
func consistency(n int, lambda float64, o options) (ConsistencyReport, error) {
	ri, ok := o.ri[n]
	if !ok {
		return ConsistencyReport{}, fmt.Errorf("%w: n=%d", ErrUnsupportedMatrixSize, n)
	}
	rep := ConsistencyReport{
		N:         n,
		LambdaMax: lambda,
		RI:        ri,
		Threshold: o.threshold,
		Method:    o.method.String(),
	}
	if n >= 2 {
		rep.CI = (lambda - float64(n)) / float64(n-1)
	}
	if ri > 0 {
		rep.CR = rep.CI / ri
	}
	rep.Acceptable = n <= 2 || rep.CR <= o.threshold

	return rep, nil
}
