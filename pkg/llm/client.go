// Package llm wraps the generative-model providers the suggestion service
// can be configured with.
package llm

import "context"

// Client issues a single system+user completion and returns the raw text
// reply. Implementations do no parsing; shaping the reply into suggestions
// is the caller's job.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
