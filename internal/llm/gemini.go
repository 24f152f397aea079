package llm

import (
	"context"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli *genai.Client
	cfg Config
}

func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	cfg = cfg.withDefaults()
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}
	cli, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli, cfg: cfg}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.cfg.Model }

func (g *GeminiClient) Close() error { return nil }

// GenerateText sends the instruction as a single user message and returns
// the first candidate's text. Exactly one attempt per call: automatic
// retries against a billed endpoint risk duplicate charges without an
// idempotency key. The call is bounded by cfg.RequestTimeout and aborts
// when ctx is canceled.
func (g *GeminiClient) GenerateText(ctx context.Context, instruction string) (string, error) {
	if g.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()
	}

	temp := float32(g.cfg.Temperature)
	resp, err := g.cli.Models.GenerateContent(ctx, g.cfg.Model,
		[]*genai.Content{{Role: genai.RoleUser, Parts: []*genai.Part{{Text: instruction}}}},
		&genai.GenerateContentConfig{
			Temperature:     &temp,
			MaxOutputTokens: int32(g.cfg.MaxOutputTokens),
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
