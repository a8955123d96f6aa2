// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill categories assigned during extraction.
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
)

// Skill represents a single skill resolved to its canonical form.
// A Skill is immutable once resolved; uniqueness within a SkillSet is
// enforced by the canonical name.
type Skill struct {
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Canonical bool   `json:"canonical"` // false when the name was cleaned but not found in the vocabulary
}

// SkillSet is an ordered, duplicate-free sequence of skills extracted from
// one document. Insertion order is preserved for deterministic output.
type SkillSet struct {
	Skills []Skill `json:"skills"`
}

// Len returns the number of skills in the set.
func (s SkillSet) Len() int {
	return len(s.Skills)
}

// Names returns the canonical names in insertion order.
func (s SkillSet) Names() []string {
	names := make([]string, len(s.Skills))
	for i, skill := range s.Skills {
		names[i] = skill.Name
	}
	return names
}

// Contains reports whether the set holds a skill with the given canonical name.
func (s SkillSet) Contains(name string) bool {
	for _, skill := range s.Skills {
		if skill.Name == name {
			return true
		}
	}
	return false
}
