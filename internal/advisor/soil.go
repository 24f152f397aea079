package advisor

import (
	"context"

	"go.uber.org/zap"
)

// SoilResult pairs the model's report interpretation with its crop and
// improvement recommendations.
type SoilResult struct {
	SoilReport map[string]any `json:"soilReport"`
	Solution   map[string]any `json:"solution"`
	Language   string         `json:"language"`
}

// AnalyzeSoil normalizes the uploaded soil report (PDF text or image),
// asks the model for a report interpretation plus a solution, and splits
// the combined reply into its two parts.
func (a *Advisor) AnalyzeSoil(ctx context.Context, mediaType string, data []byte, pctx Context) (*SoilResult, error) {
	in, err := a.norm.Normalize(mediaType, data)
	if err != nil {
		return nil, err
	}

	out, err := a.gateway.Invoke(ctx, BuildPrompt(DomainSoil, in, pctx))
	if err != nil {
		return nil, err
	}

	report, err := requireObject(out, "soilReport")
	if err != nil {
		return nil, err
	}
	solution, err := requireObject(out, "solution")
	if err != nil {
		return nil, err
	}

	a.log.Info("soil analysis complete",
		zap.String("input_kind", string(in.Kind)),
		zap.String("language", pctx.ResolvedLanguage()))
	return &SoilResult{
		SoilReport: report,
		Solution:   solution,
		Language:   pctx.ResolvedLanguage(),
	}, nil
}
