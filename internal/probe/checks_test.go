package probe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statuskit/statuskit/internal/config"
	kiterrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/status"
)

func TestForDispatch(t *testing.T) {
	t.Parallel()

	t.Run("resolves known types", func(t *testing.T) {
		t.Parallel()
		for _, typ := range []string{"file_exists", "command_exists", "env_set", "path_contains"} {
			fn, err := For(&config.Check{ID: "c", Type: typ})
			require.NoError(t, err)
			require.NotNil(t, fn)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		t.Parallel()
		_, err := For(&config.Check{ID: "c", Type: "reboot"})

		var probeErr *kiterrors.ProbeError
		require.ErrorAs(t, err, &probeErr)
		require.Equal(t, "c", probeErr.CheckID)
	})
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	t.Run("present file reports success", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "present.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		check := &config.Check{ID: "f", Type: "file_exists", FileExists: &config.FileExistsCheck{Path: path}}
		res := fileExists(context.Background(), check)

		require.True(t, res.OK())
		last, ok := res.LastInfo()
		require.True(t, ok)
		require.Contains(t, last.Text, "is present")
	})

	t.Run("present directory reports success", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		check := &config.Check{ID: "d", Type: "file_exists", FileExists: &config.FileExistsCheck{Path: dir}}
		res := fileExists(context.Background(), check)

		require.True(t, res.OK())
		last, _ := res.LastInfo()
		require.Contains(t, last.Text, "directory")
	})

	t.Run("missing path fails by default", func(t *testing.T) {
		t.Parallel()
		check := &config.Check{ID: "f", Type: "file_exists", FileExists: &config.FileExistsCheck{Path: filepath.Join(t.TempDir(), "absent")}}
		res := fileExists(context.Background(), check)

		require.Equal(t, status.CodeFailure, res.Code())
		last, ok := res.LastError()
		require.True(t, ok)
		require.Contains(t, last.Text, "does not exist")
	})

	t.Run("missing path degrades warning checks", func(t *testing.T) {
		t.Parallel()
		check := &config.Check{
			ID:         "f",
			Type:       "file_exists",
			Severity:   "warning",
			FileExists: &config.FileExistsCheck{Path: filepath.Join(t.TempDir(), "absent")},
		}
		res := fileExists(context.Background(), check)

		require.Equal(t, status.CodeWarning, res.Code())
		_, hasErr := res.LastError()
		require.False(t, hasErr)
	})
}

func TestCommandExists(t *testing.T) {
	t.Parallel()

	t.Run("resolvable command", func(t *testing.T) {
		t.Parallel()
		// The test binary itself always exists and is executable.
		self, err := os.Executable()
		require.NoError(t, err)

		check := &config.Check{ID: "c", Type: "command_exists", CommandExists: &config.CommandExistsCheck{Command: self}}
		res := commandExists(context.Background(), check)

		require.True(t, res.OK())
	})

	t.Run("unresolvable command", func(t *testing.T) {
		t.Parallel()
		check := &config.Check{ID: "c", Type: "command_exists", CommandExists: &config.CommandExistsCheck{Command: "definitely-not-a-real-binary-1f2e3d"}}
		res := commandExists(context.Background(), check)

		require.True(t, res.Failed())
	})
}

func TestEnvSet(t *testing.T) {
	tests := []struct {
		name     string
		variable string
		value    string
		set      bool
		nonEmpty bool
		want     status.Code
	}{
		{"set and non-empty", "STATUSKIT_TEST_SET", "value", true, true, status.CodeSuccess},
		{"set and empty allowed", "STATUSKIT_TEST_EMPTY_OK", "", true, false, status.CodeSuccess},
		{"set but empty rejected", "STATUSKIT_TEST_EMPTY", "", true, true, status.CodeFailure},
		{"unset", "STATUSKIT_TEST_UNSET_9A7", "", false, false, status.CodeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(tt.variable, tt.value)
			}

			check := &config.Check{
				ID:     "e",
				Type:   "env_set",
				EnvSet: &config.EnvSetCheck{Variable: tt.variable, NonEmpty: tt.nonEmpty},
			}
			res := envSet(context.Background(), check)

			require.Equal(t, tt.want, res.Code())
		})
	}
}

func TestPathContains(t *testing.T) {
	t.Run("entry present", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("PATH", dir+string(os.PathListSeparator)+"/usr/bin")

		check := &config.Check{ID: "p", Type: "path_contains", PathContains: &config.PathContainsCheck{Entry: dir}}
		res := pathContains(context.Background(), check)

		require.True(t, res.OK())
	})

	t.Run("entry present with trailing separator", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("PATH", dir+string(os.PathSeparator))

		check := &config.Check{ID: "p", Type: "path_contains", PathContains: &config.PathContainsCheck{Entry: dir}}
		res := pathContains(context.Background(), check)

		require.True(t, res.OK())
	})

	t.Run("entry absent", func(t *testing.T) {
		t.Setenv("PATH", "/usr/bin")

		check := &config.Check{ID: "p", Type: "path_contains", PathContains: &config.PathContainsCheck{Entry: "/opt/tools/bin"}}
		res := pathContains(context.Background(), check)

		require.True(t, res.Failed())
		last, _ := res.LastError()
		require.Contains(t, last.Text, "not on PATH")
	})
}
