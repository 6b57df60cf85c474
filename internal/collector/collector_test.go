package collector

import (
	"testing"
	"time"
)

func TestResults_AddFailure(t *testing.T) {
	col := NewResults()

	if col.FailureCount() != 0 {
		t.Errorf("expected 0 failures on a fresh collector, got %d", col.FailureCount())
	}

	col.AddFailure("expected 10 but was 9", "math_test.go", 42)
	col.AddFailure("expected 5 but was 4", "math_test.go", 50)

	if col.FailureCount() != 2 {
		t.Fatalf("expected 2 failures, got %d", col.FailureCount())
	}

	failures := col.Failures()
	if failures[0].Message != "expected 10 but was 9" || failures[0].File != "math_test.go" || failures[0].Line != 42 {
		t.Errorf("unexpected first record: %+v", failures[0])
	}
	if failures[1].Line != 50 {
		t.Errorf("unexpected second record: %+v", failures[1])
	}
}

func TestResults_HooksAreNoOps(t *testing.T) {
	col := NewResults()
	col.StartTests()
	col.EndTests()
	if col.FailureCount() != 0 {
		t.Errorf("hooks must not record failures, got %d", col.FailureCount())
	}
}

func TestTimingResults(t *testing.T) {
	col := NewTimingResults()
	col.StartTests()
	time.Sleep(time.Millisecond)
	col.EndTests()

	if col.Elapsed() <= 0 {
		t.Errorf("expected positive elapsed duration, got %v", col.Elapsed())
	}

	// Still accumulates failures like the base collector
	col.AddFailure("msg", "file.go", 1)
	if col.FailureCount() != 1 {
		t.Errorf("expected 1 failure, got %d", col.FailureCount())
	}
}
