// Package runner executes a checkup document's checks sequentially and
// folds each probe's findings into an overall verdict.
package runner

import (
	"context"
	"time"

	"github.com/statuskit/statuskit/internal/config"
	"github.com/statuskit/statuskit/internal/logger"
	"github.com/statuskit/statuskit/internal/probe"
	kiterrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/status"
)

// CheckResult captures the outcome of a single executed check.
type CheckResult struct {
	CheckID  string           `json:"check_id"`
	Name     string           `json:"name"`
	Code     status.Code      `json:"code"`
	Messages []status.Message `json:"messages"`
	Duration time.Duration    `json:"duration_ns"`
}

// Summary aggregates the per-check results of one checkup run.
type Summary struct {
	DocumentName string        `json:"document"`
	Results      []CheckResult `json:"results"`
	Total        int           `json:"total"`
	Passed       int           `json:"passed"`
	Warned       int           `json:"warned"`
	Failed       int           `json:"failed"`
	Duration     time.Duration `json:"duration_ns"`
}

// Runner executes checkup documents.
type Runner struct {
	log *logger.Logger
}

// New creates a Runner that reports progress through the given logger.
func New(log *logger.Logger) *Runner {
	return &Runner{log: log}
}

// Run executes every check in document order, one at a time. The returned
// TypedResult carries the run Summary as payload; its outcome code is the
// worse-of fold of all check results, so a single failing check fails the
// whole run and warning-severity findings degrade it to CodeWarning.
//
// An error is returned only for malfunctions (cancelled context, missing
// probe), never for checks that ran and found problems.
func (r *Runner) Run(ctx context.Context, doc *config.Document) (*status.TypedResult[*Summary], error) {
	overall := status.NewTyped[*Summary]()
	summary := &Summary{DocumentName: doc.Name, Total: len(doc.Checks)}
	start := time.Now()

	for i := range doc.Checks {
		check := &doc.Checks[i]

		if err := ctx.Err(); err != nil {
			return nil, kiterrors.NewProbeError(check.ID, err)
		}

		fn, err := probe.For(check)
		if err != nil {
			return nil, err
		}

		checkStart := time.Now()
		res := fn(ctx, check)
		elapsed := time.Since(checkStart)

		res.Log(r.log.Sink(), check.ID)

		summary.Results = append(summary.Results, CheckResult{
			CheckID:  check.ID,
			Name:     check.DisplayName(),
			Code:     res.Code(),
			Messages: res.Messages(),
			Duration: elapsed,
		})

		switch res.Code() {
		case status.CodeFailure:
			summary.Failed++
		case status.CodeWarning:
			summary.Warned++
		default:
			summary.Passed++
		}

		overall.Incorporate(res)
	}

	summary.Duration = time.Since(start)
	overall.SetValue(summary)

	r.log.WithFields(map[string]any{
		"document": doc.Name,
		"total":    summary.Total,
		"passed":   summary.Passed,
		"warned":   summary.Warned,
		"failed":   summary.Failed,
		"verdict":  overall.Code().String(),
	}).Info("checkup complete")

	return overall, nil
}

// ExitCode maps the summary to a process exit code: 0 when nothing failed,
// 1 when at least one check failed. Warnings alone do not fail the run; the
// overall result still reports CodeWarning for callers that want to be
// strict.
func (s *Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}
