package ui

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"unitlite/internal/domain"
	"unitlite/internal/registry"
)

// Formatter formats and displays output
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintSummary prints the run summary line and a colored verdict
func (f *Formatter) PrintSummary(sum domain.RunSummary) {
	fmt.Printf("\nSummary: %d tests, %d failures, %d errors\n", sum.Tests, sum.Failures, sum.Errors)
	fmt.Printf("Duration: %.2fs\n", sum.Duration.Seconds())

	if sum.Failures == 0 && sum.Errors == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d failure(s), %d error(s)", sum.Failures, sum.Errors)
	}
}

// PrintTestList lists registered test cases grouped by category
func (f *Formatter) PrintTestList(cases []registry.TestCase) {
	byGroup := make(map[string][]registry.TestCase)
	for _, tc := range cases {
		byGroup[tc.Group] = append(byGroup[tc.Group], tc)
	}

	var groups []string
	for group := range byGroup {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		color.Cyan("%s", group)
		for _, tc := range byGroup[group] {
			fmt.Printf("  %s ", tc.Name)
			color.White("(%s:%d)", tc.File, tc.Line)
		}
	}
	fmt.Printf("\n%d test(s) registered\n", len(cases))
}
