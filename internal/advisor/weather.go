package advisor

import (
	"context"
)

// AdvisoryResult is the field-operations guidance derived from a weather
// forecast.
type AdvisoryResult struct {
	Advisory map[string]any `json:"advisory"`
	Language string         `json:"language"`
}

// WeatherAdvisory asks the model for irrigation, pest-risk and field
// operation guidance for the next few days. The forecast arrives in
// pctx.Weather and is truncated to the embed budget by the prompt builder.
func (a *Advisor) WeatherAdvisory(ctx context.Context, pctx Context) (*AdvisoryResult, error) {
	out, err := a.gateway.Invoke(ctx, BuildPrompt(DomainWeather, NormalizedInput{Kind: InputText}, pctx))
	if err != nil {
		return nil, err
	}

	adv, err := requireObject(out, "advisory")
	if err != nil {
		return nil, err
	}
	return &AdvisoryResult{Advisory: adv, Language: pctx.ResolvedLanguage()}, nil
}
