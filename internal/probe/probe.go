// Package probe implements the read-only system checks the checkup runner
// executes. Each probe inspects one aspect of the host and reports its
// findings as a status.Result instead of an error: a missing file is a
// finding, not a malfunction.
package probe

import (
	"context"
	"fmt"

	"github.com/statuskit/statuskit/internal/config"
	kiterrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/status"
)

// Func runs a single check against the host and reports findings.
type Func func(ctx context.Context, check *config.Check) *status.Result

var probes = map[string]Func{
	"file_exists":    fileExists,
	"command_exists": commandExists,
	"env_set":        envSet,
	"path_contains":  pathContains,
}

// For resolves the probe implementing the check's type.
func For(check *config.Check) (Func, error) {
	fn, ok := probes[check.Type]
	if !ok {
		return nil, kiterrors.NewProbeError(check.ID, fmt.Errorf("no probe registered for type %q", check.Type))
	}
	return fn, nil
}

// addFinding records a failed expectation at the severity the check asked
// for. Warning-severity checks degrade the verdict without failing it.
func addFinding(res *status.Result, check *config.Check, text string) {
	if check.EffectiveSeverity() == "warning" {
		res.AddWarning(text)
		return
	}
	res.AddError(text)
}
