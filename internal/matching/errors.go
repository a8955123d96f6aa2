package matching

import "fmt"

// EmptyInputError signals a valid-but-degenerate empty skill set. It is not a
// hard failure: the caller substitutes a zero score with a Weak fit.
type EmptyInputError struct {
	Message string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: %s", e.Message)
}
