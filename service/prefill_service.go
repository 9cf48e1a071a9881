package service

import (
	"fmt"
	"math"

	"home-assessment/domain"
	"home-assessment/reference"
)

// PrefillService derives assumptions from county reference data.
type PrefillService struct {
	table *reference.Table
}

func NewPrefillService(table *reference.Table) *PrefillService {
	return &PrefillService{table: table}
}

// County returns the reference profile of a county.
func (s *PrefillService) County(state, county string) (domain.CountyProfile, error) {
	p, ok := s.table.Lookup(state, county)
	if !ok {
		return domain.CountyProfile{}, fmt.Errorf("%w: %s, %s", ErrCountyNotFound, county, state)
	}
	return p, nil
}

// Prefill sets the property taxes and appreciation rate of the county and
// defaults the down payment to 20% of the price.
func (s *PrefillService) Prefill(in domain.PrefillInput) (domain.PrefillResult, error) {
	f := fieldErrors{}
	f.check(in.PurchasePrice > 0, "purchase_price", "Purchase price must be greater than 0")
	f.check(in.DownPayment >= 0, "down_payment", "Down payment cannot be negative")
	f.check(in.Location.State != "", "location.state", "State is required")
	f.check(in.Location.County != "", "location.county", "County is required")
	if err := f.err(); err != nil {
		return domain.PrefillResult{}, err
	}

	p, err := s.County(in.Location.State, in.Location.County)
	if err != nil {
		return domain.PrefillResult{}, err
	}

	down := in.DownPayment
	if down == 0 {
		down = math.Round(in.PurchasePrice * DefaultDownPaymentRatio)
	}

	return domain.PrefillResult{
		Location:         domain.Location{State: p.State, County: p.County},
		PurchasePrice:    in.PurchasePrice,
		DownPayment:      down,
		PropertyTaxes:    math.Round(in.PurchasePrice * p.TaxRate / 100),
		AppreciationRate: p.AppreciationRate,
		SchoolRanking:    p.SchoolRanking,
	}, nil
}
