package normalize

import "fmt"

// InvalidInputError represents raw skill input that is malformed beyond
// recovery, such as a batch where every entry is empty after cleaning.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid skill input: %s", e.Message)
}
