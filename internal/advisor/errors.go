package advisor

import (
	"fmt"
	"strings"
)

// UnsupportedInputError rejects an upload whose media type the normalizer
// cannot handle. Raised before any external call is made.
type UnsupportedInputError struct {
	MediaType string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("advisor: unsupported input type %q", e.MediaType)
}

// TransportError reports a provider call that did not complete (network
// error, timeout, non-success status). Retryable from the caller's side;
// never retried here.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("advisor: %s call failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnparseableError reports model text that survives neither a direct JSON
// parse nor the bounded repair pass, or a parsed object missing a
// domain-required key. Raw carries the candidate text for diagnostics.
type UnparseableError struct {
	Raw string
	Err error
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("advisor: model response not usable: %v", e.Err)
}

func (e *UnparseableError) Unwrap() error { return e.Err }

// MissingContextError rejects a request lacking a domain-mandatory field,
// before a prompt is built or an external call is spent.
type MissingContextError struct {
	Fields []string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("advisor: missing required context: %s", strings.Join(e.Fields, ", "))
}
