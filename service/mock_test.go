package service

import (
	"context"
	"errors"
	"sync"

	"home-assessment/domain"
)

type mockCache struct {
	mu      sync.Mutex
	data    map[string]string
	gets    int
	sets    int
	failSet bool
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (m *mockCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	v, ok := m.data[key]
	return v, ok
}

func (m *mockCache) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.failSet {
		return errors.New("cache unavailable")
	}
	m.data[key] = value
	return nil
}

type mockExplainer struct {
	text    string
	err     error
	prompts []string
}

func (m *mockExplainer) Explain(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.text, m.err
}

func defaultAssumptions() domain.PropertyAssumptions {
	return domain.PropertyAssumptions{
		PurchasePrice:              600000,
		DownPayment:                300000,
		MortgageRate:               6.59,
		HoldingPeriod:              10,
		AppreciationRate:           3,
		SellingCosts:               6,
		SquareFeet:                 2000,
		PropertyTaxes:              15000,
		MaintenanceCostPerSqFt:     1.5,
		MonthlyRentalIncomePerSqFt: 1.8,
		VacancyRate:                4,
	}
}
