package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// quantile returns the p-quantile of values using linear interpolation
// between order statistics at position p*(n-1). None of gonum's
// CumulantKind variants compute this definition.
func quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// tukeyFences returns the outlier bounds [Q1-1.5*IQR, Q3+1.5*IQR], with
// the quartiles taken at the 2.5 and 97.5 percentiles rather than the
// classic 25/75. Values strictly outside either bound are outliers.
func tukeyFences(values []float64) (lower, upper float64) {
	q1 := quantile(values, 0.025)
	q3 := quantile(values, 0.975)
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}

// meanStdBounds returns the outlier bounds mean ± 2 standard deviations
// (sample standard deviation). This is the policy for collaboration
// counts; it is intentionally a separate rule from the Tukey fence.
func meanStdBounds(values []float64) (lower, upper float64) {
	mean := stat.Mean(values, nil)
	sd := stat.StdDev(values, nil)
	return mean - 2*sd, mean + 2*sd
}
