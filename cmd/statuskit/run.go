package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/statuskit/statuskit/internal/config"
	"github.com/statuskit/statuskit/internal/logger"
	"github.com/statuskit/statuskit/internal/render"
	"github.com/statuskit/statuskit/internal/runner"
	kiterrors "github.com/statuskit/statuskit/pkg/errors"
)

type runOptions struct {
	ConfigPath string
	Verbose    bool
	JSON       bool
	Timeout    time.Duration
	Out        io.Writer
}

var runCmdRunner = runChecks

func newRunCmd(root *rootFlags) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run <checkup-file>",
		Short: "Run the checks declared in a checkup file",
		Long: `Run executes every check in the checkup file, in order, without modifying
the system. Exit code 0 means no check failed (warnings are reported but
tolerated); exit code 1 means at least one check failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = args[0]
			opts.Verbose = root.verbose
			opts.Out = cmd.OutOrStdout()

			code, err := runCmdRunner(opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the report in JSON format")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "Overall run timeout; accepts Go duration strings (e.g. 60s)")

	return cmd
}

// runChecks executes the checkup and returns the process exit code: 0 when
// nothing failed, 1 when a check failed, 2 for configuration problems, 3
// for runtime malfunctions.
func runChecks(opts runOptions) (int, error) {
	doc, err := config.ParseDocument(opts.ConfigPath)
	if err != nil {
		return 2, err
	}

	level := "warn"
	if opts.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: os.Stderr})
	if err != nil {
		return 3, err
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	res, err := runner.New(log).Run(ctx, doc)
	if err != nil {
		var validationErr *kiterrors.ValidationError
		if errors.As(err, &validationErr) {
			return 2, err
		}
		return 3, err
	}

	if opts.JSON {
		if err := render.ReportJSON(opts.Out, res); err != nil {
			return 3, err
		}
	} else {
		render.Report(opts.Out, res, render.Detect(opts.Out, opts.Verbose))
	}

	return res.Value().ExitCode(), nil
}
