package dto

import "strings"

type VRJob struct {
	Id          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	VideoId     string `json:"videoId" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Submission is one saved questionnaire result from the frontend.
type Submission struct {
	Name            string         `json:"name"`
	Class           string         `json:"class"`
	School          string         `json:"school"`
	Riasec          []string       `json:"riasec" validate:"required"`
	Scores          map[string]int `json:"scores" validate:"required"`
	Answers         []int          `json:"answers" validate:"required"`
	Time            string         `json:"time" validate:"required"`
	SuggestedMajors string         `json:"suggestedMajors"`
	Combinations    string         `json:"combinations"`
}

// ApplyDefaults fills the anonymous placeholders used by the results sheet.
func (s *Submission) ApplyDefaults() {
	if trim(s.Name) == "" {
		s.Name = "Ẩn danh"
	}
	if trim(s.Class) == "" {
		s.Class = "-"
	}
	if trim(s.School) == "" {
		s.School = "-"
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
