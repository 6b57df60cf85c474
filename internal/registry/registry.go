package registry

import (
	"runtime"

	"unitlite/internal/check"
)

// TestCase is a named, runnable unit of verification with source metadata
type TestCase struct {
	Name  string // Display name of the test
	Group string // Group/category the test belongs to
	File  string // Source file the test was declared in
	Line  int    // Source line the test was declared at
	Body  func(t *check.T)
}

// NewCase builds a TestCase, capturing the caller's file and line
func NewCase(group, name string, body func(t *check.T)) TestCase {
	_, file, line, _ := runtime.Caller(1)
	return TestCase{
		Name:  name,
		Group: group,
		File:  file,
		Line:  line,
		Body:  body,
	}
}

// Registry is an ordered collection of test cases. It is constructed
// explicitly and passed to the runner; registration order is preserved.
// Duplicate names are allowed, identity is positional.
type Registry struct {
	cases []TestCase
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{}
}

// Register appends a test case. It never fails and performs no validation.
func (r *Registry) Register(tc TestCase) {
	r.cases = append(r.cases, tc)
}

// Cases returns the registered cases in registration order
func (r *Registry) Cases() []TestCase {
	return r.cases
}

// Len returns the number of registered cases
func (r *Registry) Len() int {
	return len(r.cases)
}
