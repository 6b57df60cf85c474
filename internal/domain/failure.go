package domain

// Failure kinds recorded during a run.
const (
	KindFailure = "failure" // structured assertion mismatch
	KindError   = "error"   // anything else raised during a test body
)

// Failure is a single recorded assertion failure
type Failure struct {
	Message string // Human-readable "expected X but was Y" message
	File    string // Source file where the failure was detected
	Line    int    // Source line where the failure was detected
}

// FailureDetail is a failure or error enriched with its test context,
// as persisted by storage and shown by the failures viewer
type FailureDetail struct {
	TestName string `json:"test_name"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Resolved bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
