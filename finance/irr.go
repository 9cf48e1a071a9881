package finance

import (
	"math"

	"home-assessment/domain"
)

// IRR finds the rate that zeroes NPV by bisection over [-99%, 100%].
//
// NPV is assumed to decrease with the rate, which holds when the flows have a
// single sign change (one outflow followed by inflows). Other shapes may
// yield a rate that does not zero NPV; check Converged before trusting it.
func IRR(initialInvestment float64, cashFlows []float64) domain.IRRResult {
	low, high := irrLowRate, irrHighRate
	var rate, previous float64

	for i := 1; i <= irrMaxIterations; i++ {
		rate = (low + high) / 2
		current := npvAt(initialInvestment, cashFlows, rate)

		if math.Abs(current) < irrPrecision {
			return domain.IRRResult{Rate: rate * 100, Converged: true, Iterations: i}
		}

		if current > 0 {
			low = rate
		} else {
			high = rate
		}

		// Stagnation near a bound means the root lies outside the bracket.
		if math.Abs(previous-current) < irrPrecision {
			converged := math.Abs(current) < irrStagnationTolerance
			return domain.IRRResult{Rate: rate * 100, Converged: converged, Iterations: i}
		}
		previous = current
	}

	return domain.IRRResult{Rate: rate * 100, Converged: false, Iterations: irrMaxIterations}
}
