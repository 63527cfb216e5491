package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/video-summarizer/internal/transcriber"
)

// Pipeline turns a staged video into a summary: extract audio, transcribe, summarize.
type Pipeline interface {
	// SummarizeVideo returns only the summary text.
	SummarizeVideo(ctx context.Context, videoPath string) (string, error)
	// Run returns every intermediate artifact of the run.
	Run(ctx context.Context, videoPath string) (Result, error)
}

// Result holds the artifacts of one run.
type Result struct {
	VideoPath  string
	AudioPath  string
	Transcript transcriber.Transcript
	Summary    string
}
