package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"

	"home-assessment/domain"
	"home-assessment/report"
)

const advisorTimeout = 30 * time.Second

const advisorInstruction = `You are a residential real estate investment advisor.
You explain rental property analyses in plain English for first-time investors.
Be specific with the numbers you are given, realistic, and never invent figures.`

// Explainer turns a prompt into a short explanation.
type Explainer interface {
	Explain(ctx context.Context, prompt string) (string, error)
}

// GeminiExplainer asks a Gemini model for explanations.
type GeminiExplainer struct {
	client *genai.Client
	model  string
}

func NewGeminiExplainer(ctx context.Context, apiKey, model string) (*GeminiExplainer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return &GeminiExplainer{client: client, model: model}, nil
}

func (g *GeminiExplainer) Explain(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, advisorTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: advisorInstruction}}},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// AdvisorService turns metrics into a recommendation.
type AdvisorService struct {
	explainer    Explainer
	favorableIRR float64
	moderateIRR  float64
}

// NewAdvisorService creates an advisor. A nil explainer disables model
// generated explanations.
func NewAdvisorService(explainer Explainer, favorableIRR, moderateIRR float64) *AdvisorService {
	return &AdvisorService{
		explainer:    explainer,
		favorableIRR: favorableIRR,
		moderateIRR:  moderateIRR,
	}
}

// Classify maps an IRR to a rating.
func (s *AdvisorService) Classify(irr float64) domain.Rating {
	switch {
	case irr >= s.favorableIRR:
		return domain.RatingStrong
	case irr >= s.moderateIRR:
		return domain.RatingModerate
	default:
		return domain.RatingPoor
	}
}

// Recommend builds the recommendation of r.
func (s *AdvisorService) Recommend(ctx context.Context, r domain.InvestmentResult) domain.Recommendation {
	rating := s.Classify(r.IRR)
	rec := domain.Recommendation{
		Rating:       rating,
		Title:        title(rating),
		Summary:      summary(rating, r),
		IRREstimated: !r.IRRConverged,
	}

	if s.explainer == nil {
		return rec
	}

	explanation, err := s.explainer.Explain(ctx, prompt(rating, r))
	if err != nil {
		log.Printf("[WARN] advisor explanation failed: %v", err)
		return rec
	}
	rec.Explanation = explanation
	return rec
}

func title(rating domain.Rating) string {
	switch rating {
	case domain.RatingStrong:
		return "Strong Investment Opportunity"
	case domain.RatingModerate:
		return "Moderate Investment Opportunity"
	default:
		return "Poor Investment Opportunity"
	}
}

func summary(rating domain.Rating, r domain.InvestmentResult) string {
	irr := report.Percent(r.IRR)
	coc := report.Percent(r.CashOnCashReturn)

	var text string
	switch rating {
	case domain.RatingStrong:
		text = fmt.Sprintf("This property has an excellent IRR of %s and a cash-on-cash return of %s, indicating a strong potential investment. With a break-even point of %d years, this property should provide positive returns relatively quickly.",
			irr, coc, r.BreakEvenYear)
	case domain.RatingModerate:
		text = fmt.Sprintf("This property has a decent IRR of %s and a cash-on-cash return of %s. Consider adjusting your investment parameters to improve returns, such as increasing rental income or reducing the purchase price through negotiation.",
			irr, coc)
	default:
		text = fmt.Sprintf("This property has a low IRR of %s and a cash-on-cash return of %s. We recommend looking for better investment opportunities or significantly adjusting your investment parameters to improve returns.",
			irr, coc)
	}

	if !r.IRRConverged {
		text += " The IRR is an estimate: the solver did not converge for these cash flows."
	}
	return text
}

func prompt(rating domain.Rating, r domain.InvestmentResult) string {
	return fmt.Sprintf(`Explain this rental property analysis in 3-4 sentences.

RESULTS:
- Initial investment: %s
- Monthly mortgage payment: %s
- Net operating income: %s per year
- Cap rate: %s
- Cash-on-cash return: %s
- IRR over %d years: %s
- NPV at %s: %s
- Break-even year: %d
- Rating: %s

Explain why the rating fits and which assumption would improve the result the most.`,
		report.Currency(r.InitialInvestment),
		report.Currency(r.MonthlyMortgagePayment),
		report.Currency(r.NetOperatingIncome),
		report.Percent(r.CapRate),
		report.Percent(r.CashOnCashReturn),
		len(r.YearlyCashFlows), report.Percent(r.IRR),
		report.Percent(r.DiscountRate), report.Currency(r.NPV),
		r.BreakEvenYear,
		title(rating))
}
