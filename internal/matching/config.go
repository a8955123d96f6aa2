package matching

// Default scoring parameters.
const (
	defaultThreshold          = 0.75
	defaultRelevanceWeight    = 0.7
	defaultCompletenessWeight = 0.3
	defaultStrongFloor        = 75
	defaultModerateFloor      = 45
)

// Config carries the scoring parameters for one match invocation. It is
// passed by value into each entry point rather than held as ambient state, so
// concurrent invocations with different settings never interfere.
type Config struct {
	// Threshold is the similarity below which a JD skill is missing even if
	// nearest among candidates. The boundary is inclusive: a pair at exactly
	// the threshold counts as matched. Raising it can only move matches into
	// the missing set, never the reverse.
	Threshold float64 `json:"threshold" validate:"gte=0,lte=1"`

	// RelevanceWeight and CompletenessWeight blend the two metric scores
	// into the overall match score.
	RelevanceWeight    float64 `json:"relevance_weight" validate:"gte=0,lte=1"`
	CompletenessWeight float64 `json:"completeness_weight" validate:"gte=0,lte=1"`

	// StrongFloor and ModerateFloor are the role-fit boundaries: a score at
	// or above StrongFloor is Strong, at or above ModerateFloor is Moderate,
	// anything lower is Weak.
	StrongFloor   int `json:"strong_floor" validate:"gte=0,lte=100"`
	ModerateFloor int `json:"moderate_floor" validate:"gte=0,lte=100"`
}

// DefaultConfig returns the default scoring parameters.
func DefaultConfig() Config {
	return Config{
		Threshold:          defaultThreshold,
		RelevanceWeight:    defaultRelevanceWeight,
		CompletenessWeight: defaultCompletenessWeight,
		StrongFloor:        defaultStrongFloor,
		ModerateFloor:      defaultModerateFloor,
	}
}
