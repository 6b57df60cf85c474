package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"unitlite/internal/mathlib"
)

// DemoCommand prints the arithmetic library showcase
type DemoCommand struct{}

// NewDemoCommand creates a new DemoCommand
func NewDemoCommand() *DemoCommand {
	return &DemoCommand{}
}

// Execute runs the command
func (dc *DemoCommand) Execute(cmd *cobra.Command, args []string) error {
	color.Cyan("Welcome to the App Demo")
	color.Cyan("=========================================")
	fmt.Println()

	const a, b = 10, 5
	fmt.Printf("Demonstrating math functions with values %d and %d:\n\n", a, b)

	fmt.Printf("Addition: %d + %d = %d\n", a, b, mathlib.Add(a, b))
	fmt.Printf("Subtraction: %d - %d = %d\n", a, b, mathlib.Subtract(a, b))
	fmt.Printf("Division: %d / %d = %d\n", a, b, mathlib.Divide(a, b))

	return nil
}
