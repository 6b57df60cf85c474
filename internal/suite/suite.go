// Package suite declares the demo test cases over mathlib and registers
// them explicitly, in a fixed order, at start-up.
package suite

import (
	"unitlite/internal/check"
	"unitlite/internal/fixture"
	"unitlite/internal/mathlib"
	"unitlite/internal/registry"
)

// RegisterAll registers every demo test case into reg, in declaration order
func RegisterAll(reg *registry.Registry) {
	reg.Register(registry.NewCase("MathFunctions", "Addition", func(t *check.T) {
		t.Check(check.Equal(10, mathlib.Add(5, 5)))
		t.Check(check.Equal(-10, mathlib.Add(-5, -5)))
		t.Check(check.Equal(0, mathlib.Add(5, -5)))
	}))

	reg.Register(registry.NewCase("MathFunctions", "Subtraction", func(t *check.T) {
		t.Check(check.Equal(5, mathlib.Subtract(10, 5)))
		t.Check(check.Equal(-5, mathlib.Subtract(5, 10)))
		t.Check(check.Equal(0, mathlib.Subtract(5, 5)))
	}))

	reg.Register(registry.NewCase("MathFunctions", "Division", func(t *check.T) {
		t.Check(check.Equal(2, mathlib.Divide(10, 5)))
		// Integer division truncates toward zero
		t.Check(check.Equal(1, mathlib.Divide(3, 2)))
		t.Check(check.Equal(-2, mathlib.Divide(-10, 5)))
	}))

	reg.Register(newAccumulatorCase())
}

// newAccumulatorCase shows fixture bracketing: setup seeds state,
// teardown clears it, the body asserts against it
func newAccumulatorCase() registry.TestCase {
	var acc []int
	return fixture.Wrap("Fixtures", "AccumulatorSum",
		func() { acc = []int{5, 4, 1} },
		func() { acc = nil },
		func(t *check.T) {
			sum := 0
			for _, v := range acc {
				sum = mathlib.Add(sum, v)
			}
			t.Check(check.Equal(10, sum))
		})
}
