package model

import "strings"

// UserProfile is the career questionnaire submitted by the web form.
type UserProfile struct {
	ExperienceLevel       string   `json:"experience_level"`
	JobRole               string   `json:"job_role"`
	Interests             []string `json:"interests"`
	LearningStyle         string   `json:"learning_style"`
	TimeCommitment        string   `json:"time_commitment"`
	Goals                 string   `json:"goals"`
	CurrentSkills         string   `json:"current_skills,omitempty"`
	PreferredTechnologies string   `json:"preferred_technologies,omitempty"`
}

// ParseInterests splits the comma-separated form field into trimmed,
// non-empty entries.
func ParseInterests(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
