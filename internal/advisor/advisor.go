// Package advisor implements the document-to-structured-insight pipeline:
// normalize an uploaded artifact, build a domain instruction, invoke the
// generative model under a JSON-only contract, and repair near-valid
// output into a typed result. Data flows one way: upload -> normalized
// payload -> prompt -> model call -> repaired object -> domain result.
package advisor

import (
	"go.uber.org/zap"
)

// Advisor composes the normalizer, prompt builder and model gateway for
// all advisory domains. It holds no per-request state; every request is
// independent.
type Advisor struct {
	gateway *Gateway
	norm    *Normalizer
	log     *zap.Logger
}

func New(gateway *Gateway, norm *Normalizer, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if norm == nil {
		norm = NewNormalizer(nil)
	}
	return &Advisor{gateway: gateway, norm: norm, log: logger}
}
