package types

// Role-fit categories derived from the overall match score.
const (
	FitStrong   = "Strong"
	FitModerate = "Moderate"
	FitWeak     = "Weak"
)

// MatchedSkill pairs a JD skill with its best-matching resume skill and the
// cosine similarity between them. Canonical-name equality is recorded as 1.0.
type MatchedSkill struct {
	JDSkill     string  `json:"jd_skill"`
	ResumeSkill string  `json:"resume_skill"`
	Similarity  float64 `json:"similarity"`
}

// MatchRecord is the result of comparing one resume skill set against one JD
// skill set. It is write-once: the matcher, metrics and gap stages fill it in
// and afterwards it is only serialized.
type MatchRecord struct {
	MatchedSkills     []MatchedSkill `json:"matched_skills"`
	MissingSkills     []Skill        `json:"missing_skills"`
	MatchScore        int            `json:"match_score"`
	RelevanceScore    float64        `json:"relevance_score"`
	CompletenessScore float64        `json:"completeness_score"`
	RoleFit           string         `json:"role_fit"`
	Suggestions       []string       `json:"suggestions"`
}

// JobMatch ties a MatchRecord to the JD document it was computed against,
// for batch runs that rank one resume against many jobs.
type JobMatch struct {
	JobID  string       `json:"job_id"`
	Record *MatchRecord `json:"record,omitempty"`
	Error  string       `json:"error,omitempty"` // set when this pair failed; the batch continues
}
