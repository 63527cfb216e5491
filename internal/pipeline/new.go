package pipeline

import (
	"github.com/nguyentantai21042004/video-summarizer/internal/extractor"
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/metrics"
	"github.com/nguyentantai21042004/video-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/video-summarizer/internal/transcriber"
)

// Services are the external capabilities the pipeline sequences.
type Services struct {
	Extractor   extractor.Extractor
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
}

// Options tune pipeline behavior.
type Options struct {
	// StrictTranscript fails the run with ErrUnusableTranscript instead of
	// summarizing the text of a failed transcript.
	StrictTranscript bool
}

type implPipeline struct {
	services Services
	opts     Options
	metrics  metrics.Metrics
	logger   logger.Logger
}

// New creates a Pipeline. A nil m disables metrics.
func New(services Services, opts Options, m metrics.Metrics, log logger.Logger) Pipeline {
	if m == nil {
		m = metrics.NewNoopMetrics()
	}
	return &implPipeline{
		services: services,
		opts:     opts,
		metrics:  m,
		logger:   log,
	}
}
