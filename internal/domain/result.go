package domain

import "time"

// RunSummary is the final state of one runner invocation
type RunSummary struct {
	Tests    int           // Total test cases executed
	Failures int           // Assertion failures recorded by the collector
	Errors   int           // Unexpected conditions counted by the runner
	Duration time.Duration // Wall-clock time for the whole run
}

// RunMeta contains metadata about a persisted test run
type RunMeta struct {
	Tests           int     `json:"tests"`
	Failures        int     `json:"failures"`
	Errors          int     `json:"errors"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for one run
type RunOutput struct {
	Meta    RunMeta         `json:"meta"`
	Details []FailureDetail `json:"details"`
}
