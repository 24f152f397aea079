package llm

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyResponse reports a provider envelope with no usable candidate text.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// Client is the outbound generative-model boundary. One call carries the
// full instruction as the sole user message and returns the first
// candidate's text verbatim. Implementations perform no retries; a failed
// call is reported once to the caller.
type Client interface {
	Name() string
	GenerateText(ctx context.Context, instruction string) (string, error)
	Close() error
}

// Config carries the generation parameters for a model client. It replaces
// hidden process-wide state so tests can substitute doubles.
type Config struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int
	RequestTimeout  time.Duration
	APIKey          string
	BaseURL         string
}

const (
	DefaultModel           = "gemini-2.0-flash"
	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 2000
	DefaultRequestTimeout  = 60 * time.Second
)

// withDefaults fills unset generation parameters.
func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxOutputTokens == 0 {
		c.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	return c
}

// Middleware decorates a Client.
type Middleware func(Client) Client

// Chain applies middlewares left to right, so the first one sees the call first.
func Chain(c Client, mws ...Middleware) Client {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
