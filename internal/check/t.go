package check

// T records check outcomes for one test body. The runner creates one per
// test case and drains the recorded failures into the collector afterwards.
type T struct {
	failed []Result
}

// NewT creates a fresh recorder for one test body
func NewT() *T {
	return &T{}
}

// Check records r if it failed and lets the test continue.
// It returns r.OK so callers can branch on the outcome.
func (t *T) Check(r Result) bool {
	if !r.OK {
		t.failed = append(t.failed, r)
	}
	return r.OK
}

// Require aborts the test by panicking with an Abort signal when r failed.
// The runner catches the signal at the test boundary.
func (t *T) Require(r Result) {
	if !r.OK {
		panic(Abort{Result: r})
	}
}

// Failed returns the checks recorded so far, in order
func (t *T) Failed() []Result {
	return t.failed
}

// Abort is the panic value Require uses to stop a test on a failed check.
// It is recognized by the runner and converted into a single failure record.
type Abort struct {
	Result Result
}
