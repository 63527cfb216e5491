package extractor

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

type fakeExecutor struct {
	name string
	args []string
	err  error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	return "", f.err
}

func quietLogger() logger.Logger {
	return logger.NewWithOutput("error", "text", &bytes.Buffer{})
}

func TestDeriveAudioPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mp4 suffix", "tempDir/talk.mp4", "tempDir/talk.wav"},
		{"nested dirs", "/data/uploads/2024/keynote.mp4", "/data/uploads/2024/keynote.wav"},
		{"mkv unchanged", "tempDir/talk.mkv", "tempDir/talk.mkv"},
		{"mov unchanged", "tempDir/talk.mov", "tempDir/talk.mov"},
		{"no extension unchanged", "tempDir/talk", "tempDir/talk"},
		{"upper case unchanged", "tempDir/TALK.MP4", "tempDir/TALK.MP4"},
		{"every occurrence replaced", "tempDir/a.mp4.mp4", "tempDir/a.wav.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAudioPath(tt.input))
		})
	}
}

func TestAudioPathFor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"mp4", "tempDir/talk.mp4", "tempDir/talk.wav", false},
		{"mkv falls back to extension swap", "tempDir/talk.mkv", "tempDir/talk.wav", false},
		{"avi", "tempDir/talk.avi", "tempDir/talk.wav", false},
		{"upper case mov", "tempDir/talk.MOV", "tempDir/talk.wav", false},
		{"no extension", "tempDir/talk", "", true},
		{"already wav", "tempDir/talk.wav", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := audioPathFor(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoAudioPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractAudio(t *testing.T) {
	exec := &fakeExecutor{}
	e := New("/usr/bin/ffmpeg", exec, quietLogger())

	audioPath, err := e.ExtractAudio(context.Background(), "tempDir/talk.mp4")
	require.NoError(t, err)
	assert.Equal(t, "tempDir/talk.wav", audioPath)

	assert.Equal(t, "/usr/bin/ffmpeg", exec.name)
	assert.Equal(t, []string{
		"-hide_banner", "-nostdin", "-y",
		"-i", "tempDir/talk.mp4",
		"-vn", "-ac", "1", "-ar", "16000", "-c:a", "pcm_s16le",
		"tempDir/talk.wav",
	}, exec.args)
}

func TestExtractAudioFailurePropagates(t *testing.T) {
	cause := errors.New("exit status 1")
	exec := &fakeExecutor{err: &executor.CommandError{Name: "ffmpeg", ExitCode: 1, Stderr: "moov atom not found", Err: cause}}
	e := New("", exec, quietLogger())

	_, err := e.ExtractAudio(context.Background(), "tempDir/corrupt.mp4")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ffmpeg", exec.name)
}

func TestExtractAudioNoAudioStream(t *testing.T) {
	exec := &fakeExecutor{err: &executor.CommandError{
		Name:   "ffmpeg",
		Stderr: "Output file #0 does not contain any stream",
		Err:    errors.New("exit status 1"),
	}}
	e := New("ffmpeg", exec, quietLogger())

	_, err := e.ExtractAudio(context.Background(), "tempDir/silent.mp4")
	assert.ErrorIs(t, err, ErrNoAudioStream)
}

func TestExtractAudioUnderivablePath(t *testing.T) {
	exec := &fakeExecutor{}
	e := New("ffmpeg", exec, quietLogger())

	_, err := e.ExtractAudio(context.Background(), "tempDir/noext")
	assert.ErrorIs(t, err, ErrNoAudioPath)
	assert.Empty(t, exec.name, "ffmpeg must not run")
}
