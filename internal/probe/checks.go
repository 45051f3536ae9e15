package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/statuskit/statuskit/internal/config"
	"github.com/statuskit/statuskit/pkg/status"
)

// fileExists checks that a file or directory is present. Environment
// variables in the configured path are expanded before the lookup.
func fileExists(_ context.Context, check *config.Check) *status.Result {
	res := status.New()
	path := os.ExpandEnv(check.FileExists.Path)

	info, err := os.Stat(path)
	switch {
	case err == nil:
		kind := "file"
		if info.IsDir() {
			kind = "directory"
		}
		res.AddInfo(fmt.Sprintf("%s %s is present", kind, path))
	case errors.Is(err, fs.ErrNotExist):
		addFinding(res, check, fmt.Sprintf("%s does not exist", path))
	default:
		addFinding(res, check, fmt.Sprintf("cannot stat %s: %v", path, err))
	}

	return res
}

// commandExists checks that an executable resolves via PATH.
func commandExists(_ context.Context, check *config.Check) *status.Result {
	res := status.New()

	resolved, err := exec.LookPath(check.CommandExists.Command)
	if err != nil {
		addFinding(res, check, fmt.Sprintf("command %q not found in PATH", check.CommandExists.Command))
		return res
	}

	res.AddInfo(fmt.Sprintf("command %q resolves to %s", check.CommandExists.Command, resolved))
	return res
}

// envSet checks that an environment variable is set, and non-empty when the
// check demands it.
func envSet(_ context.Context, check *config.Check) *status.Result {
	res := status.New()
	name := check.EnvSet.Variable

	value, ok := os.LookupEnv(name)
	switch {
	case !ok:
		addFinding(res, check, fmt.Sprintf("environment variable %s is not set", name))
	case check.EnvSet.NonEmpty && value == "":
		addFinding(res, check, fmt.Sprintf("environment variable %s is set but empty", name))
	default:
		res.AddInfo(fmt.Sprintf("environment variable %s is set", name))
	}

	return res
}

// pathContains checks that an entry appears in PATH. Entries are compared
// after filepath.Clean so trailing separators do not cause false misses.
func pathContains(_ context.Context, check *config.Check) *status.Result {
	res := status.New()
	want := filepath.Clean(os.ExpandEnv(check.PathContains.Entry))

	for _, entry := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == want {
			res.AddInfo(fmt.Sprintf("%s is on PATH", want))
			return res
		}
	}

	addFinding(res, check, fmt.Sprintf("%s is not on PATH", want))
	return res
}
