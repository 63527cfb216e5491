package report

import (
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

type implWriter struct {
	dir    string
	docx   bool
	logger logger.Logger
}

// New creates a Writer emitting <title>.md into dir, plus <title>.docx when docx is set.
func New(dir string, docx bool, log logger.Logger) Writer {
	return &implWriter{
		dir:    dir,
		docx:   docx,
		logger: log,
	}
}
