package collector

import (
	"time"

	"unitlite/internal/domain"
)

// Collector accumulates assertion failures for one run. StartTests and
// EndTests are extension hooks for reporting customization (e.g. timing);
// the base implementation treats them as no-ops.
type Collector interface {
	StartTests()
	EndTests()
	AddFailure(message, file string, line int)
	FailureCount() int
}

// Results is the plain accumulator: a failure log and a count.
// It never fails itself.
type Results struct {
	failures []domain.Failure
}

// NewResults creates an empty Results collector
func NewResults() *Results {
	return &Results{}
}

// StartTests is a no-op extension point
func (r *Results) StartTests() {}

// EndTests is a no-op extension point
func (r *Results) EndTests() {}

// AddFailure appends one failure record
func (r *Results) AddFailure(message, file string, line int) {
	r.failures = append(r.failures, domain.Failure{Message: message, File: file, Line: line})
}

// FailureCount returns the number of failures recorded so far
func (r *Results) FailureCount() int {
	return len(r.failures)
}

// Failures returns the recorded failures in order
func (r *Results) Failures() []domain.Failure {
	return r.failures
}

// TimingResults extends Results with wall-clock timing of the run,
// using the StartTests/EndTests hooks.
type TimingResults struct {
	Results
	started time.Time
	elapsed time.Duration
}

// NewTimingResults creates a timing collector
func NewTimingResults() *TimingResults {
	return &TimingResults{}
}

// StartTests records the run start time
func (t *TimingResults) StartTests() {
	t.started = time.Now()
}

// EndTests records the elapsed run duration
func (t *TimingResults) EndTests() {
	t.elapsed = time.Since(t.started)
}

// Elapsed returns the measured run duration
func (t *TimingResults) Elapsed() time.Duration {
	return t.elapsed
}
