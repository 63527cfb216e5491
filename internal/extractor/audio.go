package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

const (
	videoSuffix = ".mp4"
	audioSuffix = ".wav"
)

var (
	// ErrNoAudioPath is returned when no distinct audio path can be derived.
	ErrNoAudioPath = errors.New("cannot derive audio path from video path")
	// ErrNoAudioStream is returned when the container has no audio track.
	ErrNoAudioStream = errors.New("video has no audio stream")
)

// DeriveAudioPath replaces every ".mp4" in videoPath with ".wav".
// Paths without ".mp4" are returned unchanged.
func DeriveAudioPath(videoPath string) string {
	return strings.ReplaceAll(videoPath, videoSuffix, audioSuffix)
}

// audioPathFor uses DeriveAudioPath and falls back to swapping the real
// extension, so .mkv/.avi/.mov uploads never overwrite their own input.
func audioPathFor(videoPath string) (string, error) {
	if p := DeriveAudioPath(videoPath); p != videoPath {
		return p, nil
	}

	ext := filepath.Ext(videoPath)
	if ext == "" || strings.EqualFold(ext, audioSuffix) {
		return "", fmt.Errorf("%s: %w", videoPath, ErrNoAudioPath)
	}
	return strings.TrimSuffix(videoPath, ext) + audioSuffix, nil
}

// ExtractAudio decodes the audio track of videoPath into a 16kHz mono WAV
// next to it and returns the WAV path.
func (e *implExtractor) ExtractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath, err := audioPathFor(videoPath)
	if err != nil {
		return "", err
	}

	e.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	if _, err := e.executor.Execute(ctx, e.ffmpegPath, buildFFmpegArgs(videoPath, audioPath)...); err != nil {
		var cmdErr *executor.CommandError
		if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Stderr, "does not contain any stream") {
			return "", fmt.Errorf("ffmpeg extract audio %s: %w", videoPath, ErrNoAudioStream)
		}
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	e.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

// buildFFmpegArgs drops video and writes PCM 16-bit mono at 16kHz,
// which both whisper.cpp and the Whisper API accept.
func buildFFmpegArgs(videoPath, audioPath string) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", videoPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		audioPath,
	}
}
