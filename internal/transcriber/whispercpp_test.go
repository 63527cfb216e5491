package transcriber

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

type fakeExecutor struct {
	out  string
	err  error
	name string
	args []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	return f.out, f.err
}

func TestWhisperCPPRecognize(t *testing.T) {
	exec := &fakeExecutor{out: "\n Hello world.\n  This is a test.\n"}
	engine := NewWhisperCPP(WhisperCPPConfig{
		BinaryPath: "whisper-cli",
		ModelPath:  "models/ggml-base.en.bin",
		Language:   "en",
		Threads:    8,
	}, exec)

	text, err := engine.Recognize(context.Background(), "tempDir/talk.wav")
	require.NoError(t, err)
	assert.Equal(t, "Hello world. This is a test.", text)

	assert.Equal(t, "whisper-cli", exec.name)
	assert.Equal(t, []string{
		"-m", "models/ggml-base.en.bin",
		"-f", "tempDir/talk.wav",
		"-nt", "-np",
		"-t", "8",
		"-l", "en",
	}, exec.args)
}

func TestWhisperCPPBlankAudio(t *testing.T) {
	engine := NewWhisperCPP(WhisperCPPConfig{BinaryPath: "whisper-cli"}, &fakeExecutor{out: " [BLANK_AUDIO]\n"})

	_, err := engine.Recognize(context.Background(), "a.wav")
	assert.ErrorIs(t, err, ErrUnintelligible)
}

func TestWhisperCPPCommandFailure(t *testing.T) {
	cmdErr := &executor.CommandError{Name: "whisper-cli", ExitCode: 2, Stderr: "failed to load model", Err: errors.New("exit status 2")}
	engine := NewWhisperCPP(WhisperCPPConfig{BinaryPath: "whisper-cli"}, &fakeExecutor{err: cmdErr})

	_, err := engine.Recognize(context.Background(), "a.wav")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Contains(t, reqErr.Error(), "failed to load model")
}

func TestWhisperCPPCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmdErr := &executor.CommandError{Name: "whisper-cli", Err: errors.New("signal: killed")}
	engine := NewWhisperCPP(WhisperCPPConfig{BinaryPath: "whisper-cli"}, &fakeExecutor{err: cmdErr})

	_, err := engine.Recognize(ctx, "a.wav")
	assert.ErrorIs(t, err, context.Canceled)
}
