package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"home-assessment/domain"
	"home-assessment/repository"
)

// PropertyService manages saved analyses.
type PropertyService struct {
	repo        repository.PropertyRepository
	investments *InvestmentService
	now         func() time.Time
}

func NewPropertyService(repo repository.PropertyRepository, investments *InvestmentService) *PropertyService {
	return &PropertyService{repo: repo, investments: investments, now: time.Now}
}

// Save analyzes the assumptions and stores the result under a new ID.
func (s *PropertyService) Save(ctx context.Context, in domain.SavePropertyInput) (domain.SavedProperty, error) {
	name := strings.TrimSpace(in.Name)
	f := fieldErrors{}
	f.check(name != "", "name", "Name is required")
	f.check(len(name) <= MaxNameLength, "name", fmt.Sprintf("Name cannot exceed %d characters", MaxNameLength))
	if err := f.err(); err != nil {
		return domain.SavedProperty{}, err
	}

	analysis, err := s.investments.Analyze(ctx, in.Assumptions)
	if err != nil {
		return domain.SavedProperty{}, err
	}

	p := domain.SavedProperty{
		ID:             uuid.NewString(),
		Name:           name,
		Address:        strings.TrimSpace(in.Address),
		Location:       in.Location,
		Assumptions:    in.Assumptions,
		Result:         analysis.Result,
		Recommendation: analysis.Recommendation,
		SavedAt:        s.now().UTC(),
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return domain.SavedProperty{}, fmt.Errorf("save property: %w", err)
	}
	return p, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (domain.SavedProperty, error) {
	p, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.SavedProperty{}, fmt.Errorf("%w: %s", ErrPropertyNotFound, id)
	}
	return p, err
}

// List returns saved properties, newest first.
func (s *PropertyService) List(ctx context.Context) ([]domain.SavedProperty, error) {
	return s.repo.List(ctx)
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrPropertyNotFound, id)
	}
	return err
}

// Compare ranks saved properties by IRR, then NPV, best first.
func (s *PropertyService) Compare(ctx context.Context, ids []string) ([]domain.ComparisonEntry, error) {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	f := fieldErrors{}
	f.check(len(unique) > 0, "ids", "At least one property is required")
	f.check(len(unique) <= MaxCompareProperties, "ids",
		fmt.Sprintf("Cannot compare more than %d properties", MaxCompareProperties))
	if err := f.err(); err != nil {
		return nil, err
	}

	entries := make([]domain.ComparisonEntry, 0, len(unique))
	for _, id := range unique {
		p, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		r := p.Result
		entries = append(entries, domain.ComparisonEntry{
			ID:               p.ID,
			Name:             p.Name,
			PurchasePrice:    p.Assumptions.PurchasePrice,
			IRR:              r.IRR,
			IRRConverged:     r.IRRConverged,
			NPV:              r.NPV,
			CapRate:          r.CapRate,
			CashOnCashReturn: r.CashOnCashReturn,
			BreakEvenYear:    r.BreakEvenYear,
			Rating:           p.Recommendation.Rating,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IRR != entries[j].IRR {
			return entries[i].IRR > entries[j].IRR
		}
		return entries[i].NPV > entries[j].NPV
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
