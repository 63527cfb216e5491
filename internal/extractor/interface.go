package extractor

import "context"

// Extractor pulls the audio track out of a video container.
type Extractor interface {
	ExtractAudio(ctx context.Context, videoPath string) (string, error)
}
