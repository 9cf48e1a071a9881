package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"home-assessment/domain"
	"home-assessment/finance"
	"home-assessment/repository"
)

type InvestmentService struct {
	cache        repository.CacheRepository
	advisor      *AdvisorService
	discountRate float64
}

// NewInvestmentService creates a service discounting NPV at discountRate percent.
func NewInvestmentService(cache repository.CacheRepository,
	advisor *AdvisorService,
	discountRate float64,
) *InvestmentService {
	return &InvestmentService{cache: cache, advisor: advisor, discountRate: discountRate}
}

// Analyze validates a, runs the financial engine and attaches a recommendation.
// Results are cached by assumptions.
func (s *InvestmentService) Analyze(
	ctx context.Context,
	a domain.PropertyAssumptions,
) (domain.AnalysisResult, error) {

	if err := ValidateAssumptions(a); err != nil {
		return domain.AnalysisResult{}, err
	}

	key := s.cacheKey(a)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var out domain.AnalysisResult
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
		log.Printf("[WARN] discarding unreadable cache entry %s", key)
	}

	result := finance.Analyze(a, s.discountRate)
	if !result.IRRConverged {
		log.Printf("[WARN] irr did not converge, best estimate %.4f%%", result.IRR)
	}

	out := domain.AnalysisResult{
		Result:         result,
		Recommendation: s.advisor.Recommend(ctx, result),
	}

	// Cache failures are not fatal
	if data, err := json.Marshal(out); err != nil {
		log.Printf("[WARN] failed to encode analysis for cache: %v", err)
	} else if err := s.cache.Set(ctx, key, string(data)); err != nil {
		log.Printf("[WARN] failed to cache analysis: %v", err)
	}

	return out, nil
}

func (s *InvestmentService) cacheKey(a domain.PropertyAssumptions) string {
	data, _ := json.Marshal(struct {
		A            domain.PropertyAssumptions
		DiscountRate float64
	}{a, s.discountRate})
	return "analysis:" + strconv.FormatUint(xxhash.Sum64(data), 16)
}
