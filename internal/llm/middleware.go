package llm

import (
	"context"

	"go.uber.org/zap"
)

// WithLogging logs request size, latency class and errors around each call.
func WithLogging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next Client) Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next Client
	log  *zap.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateText(ctx context.Context, instruction string) (string, error) {
	l.log.Debug("model request",
		zap.String("client", l.next.Name()),
		zap.Int("instruction_bytes", len(instruction)))
	out, err := l.next.GenerateText(ctx, instruction)
	if err != nil {
		l.log.Warn("model request failed",
			zap.String("client", l.next.Name()),
			zap.Error(err))
		return "", err
	}
	l.log.Debug("model response",
		zap.String("client", l.next.Name()),
		zap.Int("response_bytes", len(out)))
	return out, nil
}

// WithRateLimit throttles outbound calls with a token bucket. rps <= 0
// disables throttling.
func WithRateLimit(rps float64, burst int) Middleware {
	rl := newRPSLimiter(rps, burst)
	return func(next Client) Client {
		return &rateLimited{next: next, rl: rl}
	}
}

type rateLimited struct {
	next Client
	rl   *rpsLimiter
}

func (r *rateLimited) Name() string { return r.next.Name() }

func (r *rateLimited) Close() error {
	r.rl.Stop()
	return r.next.Close()
}

func (r *rateLimited) GenerateText(ctx context.Context, instruction string) (string, error) {
	if err := r.rl.Acquire(ctx); err != nil {
		return "", err
	}
	return r.next.GenerateText(ctx, instruction)
}
