package domain

import "context"

// CompletionService is the gateway to an external text-generation model.
// Complete returns the raw response text. CompleteJSON additionally strips a
// markdown code fence if present and unmarshals the remaining text into out;
// LLM output is not guaranteed to be bare JSON, so callers must go through
// this contract rather than unmarshal raw responses themselves.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteJSON(ctx context.Context, prompt string, out interface{}) error
}
