package service

import "home-assessment/finance"

const (
	MaxPurchasePrice = 1_000_000_000.0
	MaxInterestRate  = 100.0 // percent per year
	MaxHoldingPeriod = finance.LoanTermYears
	MaxTermYears     = 50
	MaxSquareFeet    = 1_000_000.0
	MaxNameLength    = 200

	MaxCompareProperties = 10

	// DefaultDownPaymentRatio is applied by prefill when no down payment is given.
	DefaultDownPaymentRatio = 0.2
)
