package models

import "context"

// Model is a single-turn completion provider: prompt in, plain text out.
// The runtime treats the model's reasoning quality as an opaque dependency;
// implementations only promise synchronous text generation.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
