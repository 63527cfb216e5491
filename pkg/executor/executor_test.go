package executor

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	ctx := context.Background()
	ex := New()

	t.Run("captures stdout", func(t *testing.T) {
		out, err := ex.Execute(ctx, "sh", "-c", "printf hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("reports exit code and stderr", func(t *testing.T) {
		_, err := ex.Execute(ctx, "sh", "-c", "echo boom >&2; exit 3")
		require.Error(t, err)

		var cmdErr *CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 3, cmdErr.ExitCode)
		assert.Equal(t, "boom", cmdErr.Stderr)
		assert.Contains(t, err.Error(), "stderr: boom")
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := ex.Execute(ctx, "definitely-not-a-real-binary-xyz")
		require.Error(t, err)

		var cmdErr *CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, -1, cmdErr.ExitCode)
	})
}
