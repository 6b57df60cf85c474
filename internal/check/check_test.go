package check

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	t.Run("passes on equal values", func(t *testing.T) {
		r := Equal(10, 10)
		if !r.OK {
			t.Errorf("expected pass, got failure: %s", r.Message)
		}
	})

	t.Run("fails with expected/actual message", func(t *testing.T) {
		r := Equal(10, 9)
		if r.OK {
			t.Fatal("expected failure")
		}
		if r.Message != "expected 10 but was 9" {
			t.Errorf("unexpected message: %q", r.Message)
		}
		if r.File == "" || r.Line == 0 {
			t.Errorf("expected call-site metadata, got %s:%d", r.File, r.Line)
		}
		if !strings.HasSuffix(r.File, "check_test.go") {
			t.Errorf("expected call site in this file, got %s", r.File)
		}
	})

	t.Run("works for strings", func(t *testing.T) {
		if r := Equal("a", "a"); !r.OK {
			t.Errorf("expected pass, got failure: %s", r.Message)
		}
		if r := Equal("a", "b"); r.OK {
			t.Error("expected failure")
		}
	})
}

func TestClose(t *testing.T) {
	tests := []struct {
		name             string
		expected, actual float64
		tolerance        float64
		ok               bool
	}{
		{name: "within tolerance", expected: 3.14159, actual: 3.1416, tolerance: 0.0001, ok: true},
		{name: "exactly at tolerance", expected: 1.0, actual: 1.5, tolerance: 0.5, ok: true},
		{name: "outside tolerance", expected: 1.0, actual: 1.51, tolerance: 0.5, ok: false},
		{name: "actual below expected", expected: 2.0, actual: 1.9, tolerance: 0.2, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Close(tt.expected, tt.actual, tt.tolerance)
			if r.OK != tt.ok {
				t.Errorf("Close(%v, %v, %v).OK = %v, expected %v", tt.expected, tt.actual, tt.tolerance, r.OK, tt.ok)
			}
		})
	}
}

func TestThat(t *testing.T) {
	if r := That(true, "should not appear"); !r.OK {
		t.Error("expected pass")
	}
	r := That(false, "condition violated")
	if r.OK {
		t.Fatal("expected failure")
	}
	if r.Message != "condition violated" {
		t.Errorf("unexpected message: %q", r.Message)
	}
}

type timeoutError struct{ op string }

func (e *timeoutError) Error() string { return e.op + " timed out" }

func TestErrorAs(t *testing.T) {
	t.Run("passes on matching error kind", func(t *testing.T) {
		r := ErrorAs[*timeoutError](func() error {
			return &timeoutError{op: "read"}
		})
		if !r.OK {
			t.Errorf("expected pass, got failure: %s", r.Message)
		}
	})

	t.Run("passes on wrapped error", func(t *testing.T) {
		r := ErrorAs[*timeoutError](func() error {
			return fmt.Errorf("outer: %w", &timeoutError{op: "write"})
		})
		if !r.OK {
			t.Errorf("expected pass, got failure: %s", r.Message)
		}
	})

	t.Run("fails when no error is returned", func(t *testing.T) {
		r := ErrorAs[*timeoutError](func() error { return nil })
		if r.OK {
			t.Fatal("expected failure")
		}
		if r.Message != "expected an error but got none" {
			t.Errorf("unexpected message: %q", r.Message)
		}
	})

	t.Run("fails on a different error kind", func(t *testing.T) {
		r := ErrorAs[*timeoutError](func() error { return errors.New("boom") })
		if r.OK {
			t.Fatal("expected failure")
		}
	})
}

func TestT_Check(t *testing.T) {
	rec := NewT()

	if !rec.Check(Equal(1, 1)) {
		t.Error("Check should return true for a passing result")
	}
	if rec.Check(Equal(1, 2)) {
		t.Error("Check should return false for a failing result")
	}
	rec.Check(Equal(3, 4))
	if len(rec.Failed()) != 2 {
		t.Errorf("expected 2 recorded failures, got %d", len(rec.Failed()))
	}
}

func TestT_Require(t *testing.T) {
	rec := NewT()

	t.Run("no panic on pass", func(t *testing.T) {
		rec.Require(Equal(1, 1))
		if len(rec.Failed()) != 0 {
			t.Errorf("expected no failures, got %d", len(rec.Failed()))
		}
	})

	t.Run("panics with Abort on failure", func(t *testing.T) {
		defer func() {
			v := recover()
			if v == nil {
				t.Fatal("expected panic")
			}
			ab, ok := v.(Abort)
			if !ok {
				t.Fatalf("expected Abort panic value, got %T", v)
			}
			if ab.Result.Message != "expected 1 but was 2" {
				t.Errorf("unexpected message: %q", ab.Result.Message)
			}
		}()
		rec.Require(Equal(1, 2))
	})
}
