package models

// SchemeRecord is a government scheme reference row. Region, Type and URL
// may be empty (nullable in the store).
type SchemeRecord struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
	Region  string `json:"region,omitempty"`
	Type    string `json:"type,omitempty"`
	URL     string `json:"url,omitempty"`
}

// CentralRegion is the catch-all region label for schemes that apply
// nationwide.
const CentralRegion = "All India / Central"

// SchemeFilter narrows a scheme listing. Zero values mean "no filter".
type SchemeFilter struct {
	Region  string
	Type    string
	Keyword string // substring match against name or details
}
