package suite

import (
	"bytes"
	"testing"

	"unitlite/internal/collector"
	"unitlite/internal/config"
	"unitlite/internal/execution"
	"unitlite/internal/registry"
)

func TestRegisterAll(t *testing.T) {
	reg := registry.New()
	RegisterAll(reg)

	expected := []string{"Addition", "Subtraction", "Division", "AccumulatorSum"}
	cases := reg.Cases()
	if len(cases) != len(expected) {
		t.Fatalf("expected %d registered cases, got %d", len(expected), len(cases))
	}
	for i, name := range expected {
		if cases[i].Name != name {
			t.Errorf("case %d: expected %s, got %s", i, name, cases[i].Name)
		}
	}
}

func TestSuitePasses(t *testing.T) {
	reg := registry.New()
	RegisterAll(reg)

	cfg := config.New()
	runner := execution.NewRunner(cfg)
	var buf bytes.Buffer
	runner.SetOutput(&buf)

	sum := runner.RunAll(reg, collector.NewResults())

	if sum.Tests != reg.Len() {
		t.Errorf("expected %d tests run, got %d", reg.Len(), sum.Tests)
	}
	if sum.Failures != 0 || sum.Errors != 0 {
		t.Errorf("demo suite must pass: got %d failures, %d errors\n%s", sum.Failures, sum.Errors, buf.String())
	}
}

func TestSuiteIdempotent(t *testing.T) {
	reg := registry.New()
	RegisterAll(reg)

	cfg := config.New()
	runner := execution.NewRunner(cfg)
	var buf bytes.Buffer
	runner.SetOutput(&buf)

	first := runner.RunAll(reg, collector.NewResults())
	second := runner.RunAll(reg, collector.NewResults())

	if first.Tests != second.Tests || first.Failures != second.Failures || first.Errors != second.Errors {
		t.Errorf("two runs with fresh collectors must match: %+v vs %+v", first, second)
	}
}
