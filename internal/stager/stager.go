package stager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrInvalidName is returned when a blob has no usable file name.
var ErrInvalidName = errors.New("invalid upload file name")

// Stage writes blob.Data verbatim to <dir>/<name>. An existing file with the
// same name is overwritten.
func (s *implStager) Stage(ctx context.Context, blob Blob) (string, error) {
	name := filepath.Base(blob.Name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("stage %q: %w", blob.Name, ErrInvalidName)
	}

	if err := s.ensureDir(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, blob.Data, 0644); err != nil {
		return "", fmt.Errorf("write staged file: %w", err)
	}

	s.logger.Info(ctx, "Staged upload %s (%d bytes)", path, len(blob.Data))
	return path, nil
}

// ensureDir creates the working directory (one level only) if it is missing.
func (s *implStager) ensureDir() error {
	if _, err := os.Stat(s.dir); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat work dir: %w", err)
	}

	if err := os.Mkdir(s.dir, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("create work dir: %w", err)
	}
	return nil
}
