// Package render turns a checkup summary into terminal output: a styled
// report when writing to a terminal, plain text otherwise, or JSON on
// request.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/statuskit/statuskit/internal/runner"
	"github.com/statuskit/statuskit/pkg/status"
)

// summaryRounding keeps durations readable in the footer line.
const summaryRounding = time.Millisecond

// Options controls report rendering.
type Options struct {
	// Styled enables lipgloss colors. Detect picks a sensible default.
	Styled bool
	// Verbose includes every recorded message, not just findings.
	Verbose bool
}

// Detect returns Options with styling enabled when w is a terminal.
func Detect(w io.Writer, verbose bool) Options {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return Options{Styled: styled, Verbose: verbose}
}

// Report writes a human-readable checkup report.
func Report(w io.Writer, res *status.TypedResult[*runner.Summary], opts Options) {
	summary := res.Value()

	fmt.Fprintln(w, style(titleStyle, opts, fmt.Sprintf("Checkup: %s", summary.DocumentName)))
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, cr := range summary.Results {
		fmt.Fprintf(w, "%s %s\n", symbol(cr.Code, opts), cr.Name)
		for _, m := range cr.Messages {
			if !opts.Verbose && m.Severity == status.SeverityInfo {
				continue
			}
			fmt.Fprintf(w, "    %s\n", style(detailStyle, opts, m.String()))
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%d passed, %d warned, %d failed (%d total) in %s\n",
		summary.Passed, summary.Warned, summary.Failed, summary.Total, summary.Duration.Round(summaryRounding))
	fmt.Fprintf(w, "verdict: %s\n", verdict(res.Code(), opts))
}

// ReportJSON writes the summary and overall verdict as a JSON document.
func ReportJSON(w io.Writer, res *status.TypedResult[*runner.Summary]) error {
	payload := struct {
		Verdict string          `json:"verdict"`
		Summary *runner.Summary `json:"summary"`
	}{
		Verdict: res.Code().String(),
		Summary: res.Value(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func symbol(code status.Code, opts Options) string {
	switch code {
	case status.CodeFailure:
		return style(failureStyle, opts, "✖")
	case status.CodeWarning:
		return style(warningStyle, opts, "⚠")
	default:
		return style(successStyle, opts, "✔")
	}
}

func verdict(code status.Code, opts Options) string {
	switch code {
	case status.CodeFailure:
		return style(failureStyle, opts, code.String())
	case status.CodeWarning:
		return style(warningStyle, opts, code.String())
	default:
		return style(successStyle, opts, code.String())
	}
}

func style(s lipgloss.Style, opts Options, text string) string {
	if !opts.Styled {
		return text
	}
	return s.Render(text)
}
