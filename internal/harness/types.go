package harness

// PartResult is the outcome of one part.
type PartResult struct {
	Part int `json:"part"`

	// Answer is what the part produced.
	Answer string `json:"answer"`

	// Expected is the scenario's answer, empty when the part is not pinned.
	Expected string `json:"expected,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success.
	// True if every part ran and every expectation matched.
	Pass bool `json:"pass"`

	// Parts holds the answers of every part that ran, in order.
	Parts []PartResult `json:"parts"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Parts:  []PartResult{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
