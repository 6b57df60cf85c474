package check

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// Result is the outcome of a single check: either a pass, or a failure
// carrying a message and the call site it was produced at
type Result struct {
	OK      bool   // Whether the check passed
	Message string // Failure message, empty on pass
	File    string // Call-site source file
	Line    int    // Call-site source line
}

// Equal compares two values for equality
func Equal[T comparable](expected, actual T) Result {
	if expected == actual {
		return Result{OK: true}
	}
	return fail(fmt.Sprintf("expected %v but was %v", expected, actual))
}

// Close passes iff actual is within tolerance of expected
func Close(expected, actual, tolerance float64) Result {
	if math.Abs(expected-actual) <= tolerance {
		return Result{OK: true}
	}
	return fail(fmt.Sprintf("expected %v but was %v (tolerance %v)", expected, actual, tolerance))
}

// That passes iff ok is true; msg describes the condition being checked
func That(ok bool, msg string) Result {
	if ok {
		return Result{OK: true}
	}
	return fail(msg)
}

// ErrorAs executes fn and passes iff the returned error matches kind E.
// It fails when fn returns nil or an error of a different kind.
func ErrorAs[E error](fn func() error) Result {
	err := fn()
	if err == nil {
		return fail("expected an error but got none")
	}
	var target E
	if !errors.As(err, &target) {
		return fail(fmt.Sprintf("expected error of kind %T but was %q", target, err))
	}
	return Result{OK: true}
}

// fail builds a failed Result tagged with the caller of the check function
func fail(msg string) Result {
	_, file, line, _ := runtime.Caller(2)
	return Result{Message: msg, File: file, Line: line}
}
