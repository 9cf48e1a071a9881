package domain

type Rating string

const (
	RatingStrong   Rating = "strong"
	RatingModerate Rating = "moderate"
	RatingPoor     Rating = "poor"
)

type Recommendation struct {
	Rating       Rating `json:"rating"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	Explanation  string `json:"explanation,omitempty"` // model generated, empty without an API key
	IRREstimated bool   `json:"irr_estimated,omitempty"`
}

type AnalysisResult struct {
	Result         InvestmentResult `json:"result"`
	Recommendation Recommendation   `json:"recommendation"`
}
