package models

// EcoPractice is a stored sustainable-practice reference row.
type EcoPractice struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Suitability string `json:"suitability"`
}

// PracticeGuide is the long-form guide entry for a practice: what it is, why
// to adopt it, and how.
type PracticeGuide struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Benefits       []string `json:"benefits"`
	Implementation []string `json:"implementation"`
	Challenges     []string `json:"challenges,omitempty"`
}

// LifecycleStage is a static care guide for one stage of a cattle lifecycle.
type LifecycleStage struct {
	Name    string   `json:"name"`
	Focus   string   `json:"focus"`
	Details []string `json:"details"`
}
