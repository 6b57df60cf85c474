// Package execution drives a registry of test cases against one collector,
// sequentially and with per-test failure isolation.
package execution

import (
	"fmt"
	"io"
	"os"
	"time"

	"unitlite/internal/check"
	"unitlite/internal/collector"
	"unitlite/internal/config"
	"unitlite/internal/domain"
	"unitlite/internal/registry"
	"unitlite/internal/ui"
)

// Runner executes registered test cases in registration order
type Runner struct {
	config   *config.Config
	out      io.Writer
	progress *ui.ProgressBar
	details  []domain.FailureDetail
}

// NewRunner creates a new Runner writing diagnostics to stdout
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg, out: os.Stdout}
}

// SetOutput redirects diagnostic output (used by tests)
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// SetProgress sets the progress bar updated after each completed case
func (r *Runner) SetProgress(p *ui.ProgressBar) {
	r.progress = p
}

// RunAll executes every case in the registry against the collector and
// returns the run's final state. A failing or erroring case never stops
// the remaining cases; an empty registry is a valid run.
func (r *Runner) RunAll(reg *registry.Registry, col collector.Collector) domain.RunSummary {
	var sum domain.RunSummary
	r.details = nil
	start := time.Now()
	col.StartTests()

	if r.config.Verbose {
		fmt.Fprintf(r.out, "\nRunning tests...\n")
	}

	passed := 0
	for _, tc := range reg.Cases() {
		sum.Tests++
		if r.config.Verbose {
			fmt.Fprintf(r.out, "Running: %s ... ", tc.Name)
		}

		caseDetails, errored := r.runCase(tc, col)
		if errored {
			sum.Errors++
		}

		if r.config.Verbose {
			if len(caseDetails) == 0 {
				fmt.Fprintf(r.out, "PASSED\n")
			} else {
				fmt.Fprintf(r.out, "FAILED\n")
			}
		}
		// Diagnostics are emitted immediately, never buffered past the case
		for _, d := range caseDetails {
			fmt.Fprintf(r.out, "\n%s(%d) : Error: %s thrown in %s\n", d.File, d.Line, d.Message, d.TestName)
		}
		r.details = append(r.details, caseDetails...)

		if len(caseDetails) == 0 {
			passed++
		}
		if r.progress != nil {
			r.progress.Update(passed, sum.Tests-passed)
		}
	}

	col.EndTests()
	if r.progress != nil {
		r.progress.Finish()
	}
	sum.Failures = col.FailureCount()
	sum.Duration = time.Since(start)
	return sum
}

// Details returns the failure and error records of the last run,
// in the order they were produced
func (r *Runner) Details() []domain.FailureDetail {
	return r.details
}

// runCase invokes one test body behind a recover boundary. An Abort signal
// becomes a single failure record tagged with the case's own file and line;
// any other panic becomes an "error" with a generic message when the panic
// value carries no text. Check failures recorded by the body are drained
// into the collector afterwards.
func (r *Runner) runCase(tc registry.TestCase, col collector.Collector) (details []domain.FailureDetail, errored bool) {
	t := check.NewT()

	var abort *check.Result
	var errMsg string

	func() {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if ab, ok := rec.(check.Abort); ok {
				res := ab.Result
				abort = &res
				return
			}
			errored = true
			errMsg = fmt.Sprint(rec)
			if errMsg == "" {
				errMsg = "unknown error"
			}
		}()
		tc.Body(t)
	}()

	for _, res := range t.Failed() {
		col.AddFailure(res.Message, res.File, res.Line)
		details = append(details, domain.FailureDetail{
			TestName: tc.Name,
			Kind:     domain.KindFailure,
			Message:  res.Message,
			File:     res.File,
			Line:     res.Line,
		})
	}
	if abort != nil {
		col.AddFailure(abort.Message, tc.File, tc.Line)
		details = append(details, domain.FailureDetail{
			TestName: tc.Name,
			Kind:     domain.KindFailure,
			Message:  abort.Message,
			File:     tc.File,
			Line:     tc.Line,
		})
	}
	if errored {
		details = append(details, domain.FailureDetail{
			TestName: tc.Name,
			Kind:     domain.KindError,
			Message:  errMsg,
			File:     tc.File,
			Line:     tc.Line,
		})
	}
	return details, errored
}
