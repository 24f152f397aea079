package advisor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"agroadvisor/internal/jsonrepair"
	"agroadvisor/internal/llm"
)

// ModelOutput is the structured result of one gateway call. Data is the
// repaired JSON object; Raw is the candidate text after fence extraction,
// kept for diagnostics.
type ModelOutput struct {
	Data map[string]any
	Raw  string
}

// Gateway invokes the generative model under the JSON-only output contract
// and recovers a structured object from its reply. Exactly one model
// attempt per call.
type Gateway struct {
	client llm.Client
	log    *zap.Logger
}

func NewGateway(client llm.Client, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{client: client, log: logger}
}

var errNotObject = errors.New("top-level value is not a JSON object")

// Invoke sends the instruction and parses the reply. Models are known to
// wrap JSON in explanatory fences despite instructions not to, so a fenced
// block is unwrapped before the repair pass.
func (g *Gateway) Invoke(ctx context.Context, instruction string) (ModelOutput, error) {
	text, err := g.client.GenerateText(ctx, instruction)
	if err != nil {
		return ModelOutput{}, &TransportError{Provider: g.client.Name(), Err: err}
	}

	candidate := jsonrepair.ExtractFenced(text)
	v, err := jsonrepair.Repair(candidate)
	if err != nil {
		g.log.Warn("model reply not repairable", zap.Int("raw_bytes", len(candidate)))
		return ModelOutput{}, &UnparseableError{Raw: candidate, Err: err}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return ModelOutput{}, &UnparseableError{Raw: candidate, Err: errNotObject}
	}
	return ModelOutput{Data: obj, Raw: candidate}, nil
}

// requireObject extracts a mandatory top-level object key. A syntactically
// valid reply missing the key is a hard failure, never coerced to an empty
// object that could pass for a genuine empty result.
func requireObject(out ModelOutput, key string) (map[string]any, error) {
	v, ok := out.Data[key]
	if !ok {
		return nil, &UnparseableError{Raw: out.Raw, Err: fmt.Errorf("missing required key %q", key)}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &UnparseableError{Raw: out.Raw, Err: fmt.Errorf("key %q is not an object", key)}
	}
	return m, nil
}
