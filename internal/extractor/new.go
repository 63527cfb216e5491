package extractor

import (
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

type implExtractor struct {
	ffmpegPath string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates an ffmpeg-backed Extractor.
func New(ffmpegPath string, exec executor.Executor, log logger.Logger) Extractor {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &implExtractor{
		ffmpegPath: ffmpegPath,
		executor:   exec,
		logger:     log,
	}
}
