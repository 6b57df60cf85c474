// Package mathlib provides the arithmetic functions the demo suite
// exercises: three pure integer operations with no error handling.
package mathlib

// Add returns the sum of two integers
func Add(a, b int) int {
	return a + b
}

// Subtract returns the difference a - b
func Subtract(a, b int) int {
	return a - b
}

// Divide returns the integer quotient a / b, truncated toward zero.
// Division by zero and overflow (MinInt / -1) are the caller's responsibility.
func Divide(a, b int) int {
	return a / b
}
