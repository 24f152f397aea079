package advisor

import (
	"context"
	"strings"
)

// FertilizerResult is the model's application plan for a crop at a given
// growth stage.
type FertilizerResult struct {
	Plan     map[string]any `json:"plan"`
	Language string         `json:"language"`
}

// FertilizerPlan produces a fertilizer application plan. Crop and growth
// stage are mandatory; an incomplete request is rejected before any
// external call is spent.
func (a *Advisor) FertilizerPlan(ctx context.Context, pctx Context) (*FertilizerResult, error) {
	var missing []string
	if strings.TrimSpace(pctx.Crop) == "" {
		missing = append(missing, "crop")
	}
	if strings.TrimSpace(pctx.Stage) == "" {
		missing = append(missing, "stage")
	}
	if len(missing) > 0 {
		return nil, &MissingContextError{Fields: missing}
	}

	out, err := a.gateway.Invoke(ctx, BuildPrompt(DomainFertilizer, NormalizedInput{Kind: InputText}, pctx))
	if err != nil {
		return nil, err
	}

	plan, err := requireObject(out, "plan")
	if err != nil {
		return nil, err
	}
	return &FertilizerResult{Plan: plan, Language: pctx.ResolvedLanguage()}, nil
}
