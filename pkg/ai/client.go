// pkg/ai/client.go

package ai

import "context"

// Client is the opaque text-in/text-out boundary to the generative model.
// Callers own fallback behavior; implementations just report errors.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
