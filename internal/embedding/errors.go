package embedding

import "fmt"

// RetrievalTimeoutError indicates the embedding or index collaborator did not
// respond in time. It is propagated to the caller, never retried here; retry
// policy belongs to the orchestration layer.
type RetrievalTimeoutError struct {
	Text  string // the skill text whose retrieval timed out
	Cause error
}

func (e *RetrievalTimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("retrieval timed out for %q: %v", e.Text, e.Cause)
	}
	return fmt.Sprintf("retrieval timed out for %q", e.Text)
}

func (e *RetrievalTimeoutError) Unwrap() error {
	return e.Cause
}
