package executor

import "context"

// Executor runs external media tools (ffmpeg, whisper.cpp) and returns their stdout.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
