package summarizer

import "context"

// Summarizer asks a hosted language model for a summary of a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
