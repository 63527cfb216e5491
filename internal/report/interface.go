package report

import (
	"context"
	"time"
)

// Report is one finished summary ready to be written to disk.
type Report struct {
	Title      string
	Transcript string
	Summary    string
	CreatedAt  time.Time
}

// Writer persists reports and returns the paths it wrote.
type Writer interface {
	Write(ctx context.Context, r Report) ([]string, error)
}
