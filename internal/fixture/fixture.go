// Package fixture wraps a test body with setup/teardown bracketing.
// Teardown runs on every exit path from the wrapped body.
package fixture

import (
	"runtime"

	"unitlite/internal/check"
	"unitlite/internal/registry"
)

// Wrap produces a test case whose body calls setup, executes body, then
// teardown — whether or not the body panicked. A panic escaping the user
// body is recorded as a generic failure at the wrap site and does not
// reach the runner. Nil setup or teardown callables are skipped.
func Wrap(group, name string, setup, teardown func(), body func(t *check.T)) registry.TestCase {
	_, file, line, _ := runtime.Caller(1)

	wrapped := func(t *check.T) {
		if setup != nil {
			setup()
		}
		if teardown != nil {
			defer teardown()
		}
		defer func() {
			if rec := recover(); rec != nil {
				t.Check(check.Result{Message: "unexpected exception", File: file, Line: line})
			}
		}()
		body(t)
	}

	return registry.TestCase{
		Name:  name,
		Group: group,
		File:  file,
		Line:  line,
		Body:  wrapped,
	}
}
