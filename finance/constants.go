package finance

const (
	// LoanTermYears is the fixed mortgage term, independent of the holding period.
	LoanTermYears = 30

	// InsuranceRate is the yearly insurance cost as a fraction of the purchase price.
	InsuranceRate = 0.004

	// DefaultDiscountRate is the NPV discount rate in percent.
	DefaultDiscountRate = 7.0

	irrLowRate       = -0.99
	irrHighRate      = 1.0
	irrMaxIterations = 100
	irrPrecision     = 0.0001

	// NPV magnitude under which a stagnated search still counts as converged.
	irrStagnationTolerance = 0.01
)
