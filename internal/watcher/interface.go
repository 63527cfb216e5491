package watcher

import "context"

// Watcher hands new video files in a directory to an EventHandler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly created video file.
type EventHandler func(ctx context.Context, filePath string) error
