package gen

import "fmt"

// ValidationError rejects a run before any mutation happens: the selection is
// not a concrete class, or no eligible field exists.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// MutationError wraps a host delete/insert failure. Fatal for the run; edits
// already applied are not rolled back.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}
