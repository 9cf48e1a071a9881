package service

import (
	"errors"
	"testing"

	"home-assessment/domain"
	"home-assessment/reference"
)

func TestPrefillService_Prefill(t *testing.T) {
	s := NewPrefillService(reference.Default())

	out, err := s.Prefill(domain.PrefillInput{
		Location:      domain.Location{State: "nj", County: "bergen"},
		PurchasePrice: 600000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bergen: 2.15% tax, 3.8% appreciation
	if out.PropertyTaxes != 12900 {
		t.Errorf("property taxes: got %f", out.PropertyTaxes)
	}
	if out.AppreciationRate != 3.8 {
		t.Errorf("appreciation: got %f", out.AppreciationRate)
	}
	if out.DownPayment != 120000 {
		t.Errorf("default down payment: got %f", out.DownPayment)
	}
	if out.Location.State != "NJ" || out.Location.County != "Bergen" {
		t.Errorf("location should be canonical, got %+v", out.Location)
	}
}

func TestPrefillService_KeepsDownPayment(t *testing.T) {
	s := NewPrefillService(reference.Default())

	out, err := s.Prefill(domain.PrefillInput{
		Location:      domain.Location{State: "NY", County: "Westchester"},
		PurchasePrice: 750000,
		DownPayment:   250000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DownPayment != 250000 {
		t.Errorf("down payment: got %f", out.DownPayment)
	}
	// 750000 * 1.62% = 12150
	if out.PropertyTaxes != 12150 {
		t.Errorf("property taxes: got %f", out.PropertyTaxes)
	}
}

func TestPrefillService_UnknownCounty(t *testing.T) {
	s := NewPrefillService(reference.Default())

	_, err := s.Prefill(domain.PrefillInput{
		Location:      domain.Location{State: "CA", County: "Marin"},
		PurchasePrice: 600000,
	})
	if !errors.Is(err, ErrCountyNotFound) {
		t.Fatalf("expected ErrCountyNotFound, got %v", err)
	}
}

func TestPrefillService_Invalid(t *testing.T) {
	s := NewPrefillService(reference.Default())

	_, err := s.Prefill(domain.PrefillInput{Location: domain.Location{State: "NJ"}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["purchase_price"]; !ok {
		t.Errorf("purchase_price should be reported")
	}
	if _, ok := verr.Fields["location.county"]; !ok {
		t.Errorf("location.county should be reported")
	}
}

func TestPrefillService_County(t *testing.T) {
	s := NewPrefillService(reference.Default())

	p, err := s.County("CT", "new haven")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TaxRate != 2.38 || p.County != "New Haven" {
		t.Errorf("unexpected profile %+v", p)
	}
}
