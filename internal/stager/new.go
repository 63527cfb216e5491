package stager

import (
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

type implStager struct {
	dir    string
	logger logger.Logger
}

// New creates a Stager writing into dir. The directory is created on first use.
func New(dir string, log logger.Logger) Stager {
	return &implStager{
		dir:    dir,
		logger: log,
	}
}
