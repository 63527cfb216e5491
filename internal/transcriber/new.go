package transcriber

import (
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

type implTranscriber struct {
	engine   Engine
	detector LanguageDetector
	logger   logger.Logger
}

// New wraps engine into a Transcriber. detector may be nil.
func New(engine Engine, detector LanguageDetector, log logger.Logger) Transcriber {
	return &implTranscriber{
		engine:   engine,
		detector: detector,
		logger:   log,
	}
}
