package advisor

import (
	"context"
)

// MarketResult holds crop and marketing-timing recommendations for a
// regional price series.
type MarketResult struct {
	Recommendation map[string]any `json:"recommendation"`
	Language       string         `json:"language"`
}

// MarketRecommendation asks the model for profitable crops and timing/risk
// tips based on pctx.Region and pctx.PriceSeries.
func (a *Advisor) MarketRecommendation(ctx context.Context, pctx Context) (*MarketResult, error) {
	out, err := a.gateway.Invoke(ctx, BuildPrompt(DomainMarket, NormalizedInput{Kind: InputText}, pctx))
	if err != nil {
		return nil, err
	}

	rec, err := requireObject(out, "recommendation")
	if err != nil {
		return nil, err
	}
	return &MarketResult{Recommendation: rec, Language: pctx.ResolvedLanguage()}, nil
}
