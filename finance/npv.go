package finance

import "math"

// NPV discounts cashFlows at discountRatePercent. cashFlows[0] is received at
// the end of year one.
func NPV(initialInvestment float64, cashFlows []float64, discountRatePercent float64) float64 {
	return npvAt(initialInvestment, cashFlows, discountRatePercent/100)
}

func npvAt(initialInvestment float64, cashFlows []float64, rate float64) float64 {
	value := -initialInvestment
	for i, cf := range cashFlows {
		value += cf / math.Pow(1+rate, float64(i+1))
	}
	return value
}
