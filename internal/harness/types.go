package harness

import "github.com/roach88/rwalk/internal/walk"

// Result is the outcome of a scenario.
type Result struct {
	// Pass is true when every check succeeded.
	Pass bool `json:"pass"`

	// Walk is the generated walk.
	Walk walk.Positions `json:"walk"`

	// Errors holds one message per failed check.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result.
func NewResult() *Result {
	return &Result{Pass: true, Errors: []string{}}
}

// AddError records a failed check and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
