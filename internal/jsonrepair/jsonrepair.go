// Package jsonrepair recovers well-formed JSON from near-valid model output.
//
// Generative models asked for "JSON only" still produce a small set of
// mechanical defects: fenced code blocks, // comments, trailing commas,
// single-quoted strings and unquoted object keys. Repair applies exactly
// those fixes, in a fixed order, and nothing else. Text that is still not
// JSON afterwards is a terminal failure for the call.
package jsonrepair

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotRepairable reports text that survives neither a direct parse nor the
// bounded fix pass.
var ErrNotRepairable = errors.New("jsonrepair: text is not repairable JSON")

var (
	reFence         = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")
	reLineComment   = regexp.MustCompile(`(?m)//.*$`)
	reTrailingComma = regexp.MustCompile(`,\s*([}\]])`)
	reBareKey       = regexp.MustCompile(`([{,]\s*)([A-Za-z0-9_]+)\s*:`)
)

// ExtractFenced returns the content of the first triple-backtick code block
// (optionally tagged "json"). Text without a fence is returned unchanged.
func ExtractFenced(text string) string {
	if m := reFence.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// StripLineComments removes // comments through end of line.
func StripLineComments(text string) string {
	return reLineComment.ReplaceAllString(text, "")
}

// DropTrailingCommas removes commas immediately preceding a closing } or ].
func DropTrailingCommas(text string) string {
	return reTrailingComma.ReplaceAllString(text, "$1")
}

// NormalizeQuotes rewrites single-quote string delimiters to double quotes.
func NormalizeQuotes(text string) string {
	return strings.ReplaceAll(text, "'", `"`)
}

// QuoteBareKeys wraps identifier-style object keys in double quotes.
func QuoteBareKeys(text string) string {
	return reBareKey.ReplaceAllString(text, `$1"$2":`)
}

// clean runs the full fix pass in the fixed order.
func clean(text string) string {
	text = StripLineComments(text)
	text = DropTrailingCommas(text)
	text = NormalizeQuotes(text)
	text = QuoteBareKeys(text)
	return text
}

// Repair parses text as JSON, applying the bounded fix pass only when the
// direct parse fails. On total failure the original text is preserved in the
// error for diagnostics; Repair never substitutes an empty value.
func Repair(text string) (any, error) {
	trimmed := strings.TrimSpace(text)

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
		return v, nil
	}

	if err := json.Unmarshal([]byte(clean(trimmed)), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRepairable, err)
	}
	return v, nil
}
