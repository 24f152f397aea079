package advisor

import (
	"context"

	"go.uber.org/zap"
)

// DiseaseResult carries the model's diagnosis object unchanged.
type DiseaseResult struct {
	Diagnosis map[string]any `json:"diagnosis"`
	Language  string         `json:"language"`
}

// DiagnoseDisease normalizes the uploaded crop photo and returns the
// model's diagnosis.
func (a *Advisor) DiagnoseDisease(ctx context.Context, mediaType string, data []byte, pctx Context) (*DiseaseResult, error) {
	in, err := a.norm.Normalize(mediaType, data)
	if err != nil {
		return nil, err
	}

	out, err := a.gateway.Invoke(ctx, BuildPrompt(DomainDisease, in, pctx))
	if err != nil {
		return nil, err
	}

	diagnosis, err := requireObject(out, "diagnosis")
	if err != nil {
		return nil, err
	}

	a.log.Info("disease diagnosis complete",
		zap.String("input_kind", string(in.Kind)),
		zap.String("language", pctx.ResolvedLanguage()))
	return &DiseaseResult{
		Diagnosis: diagnosis,
		Language:  pctx.ResolvedLanguage(),
	}, nil
}
