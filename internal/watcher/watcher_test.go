package watcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

func TestWatcherHandlesNewVideos(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewWithOutput("error", "text", &bytes.Buffer{})

	var mu sync.Mutex
	var handled []string
	done := make(chan struct{}, 4)

	w, err := New(dir, func(ctx context.Context, filePath string) error {
		mu.Lock()
		handled = append(handled, filepath.Base(filePath))
		mu.Unlock()
		done <- struct{}{}
		return nil
	}, log, 1)
	require.NoError(t, err)
	defer w.Stop()
	w.(*implWatcher).settleDelay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	// Let the loop start before creating files.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "talk.mp4"), []byte("x"), 0644))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"talk.mp4"}, handled)
}

func TestNewMissingDir(t *testing.T) {
	log := logger.NewWithOutput("error", "text", &bytes.Buffer{})
	_, err := New(filepath.Join(t.TempDir(), "missing"), func(ctx context.Context, filePath string) error {
		return nil
	}, log, 1)
	assert.Error(t, err)
}
