package models

// DiseaseRecord is a reference row in the disease catalog. Rows are inserted
// once at seed time and never mutated.
type DiseaseRecord struct {
	ID        int64  `json:"id"`
	Symptoms  string `json:"symptoms"` // comma-joined free text
	Disease   string `json:"disease"`
	Treatment string `json:"treatment"`
	Severity  string `json:"severity"`
	Notes     string `json:"notes,omitempty"`
}

// DiseaseMatch pairs a matched catalog record with presentation data derived
// from the user's query.
type DiseaseMatch struct {
	DiseaseRecord
	HighlightedSymptoms string   `json:"highlighted_symptoms"`
	MatchedTokens       []string `json:"matched_tokens"`
}
