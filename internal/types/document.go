package types

import "time"

// Document types accepted by the pipeline.
const (
	DocTypeResume = "resume"
	DocTypeJob    = "job"
)

// Document is the unified record for one processed resume or job description:
// the cleaned extracted text plus the skills pulled out of it. This is the
// shape persisted to data/processed and uploaded to S3.
type Document struct {
	DocID       string    `json:"doc_id"`
	DocType     string    `json:"doc_type"`
	Text        string    `json:"text"`
	WordCount   int       `json:"word_count"`
	FileName    string    `json:"file_name,omitempty"`
	Skills      SkillSet  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
	ProcessedBy string    `json:"processed_by"`

	// Resume documents carry their ranked job matches after a batch run.
	JobMatches []JobMatch `json:"job_matches,omitempty"`
}
