package models

// Strength grades the draft power of a breed.
type Strength string

const (
	StrengthLow      Strength = "Low"
	StrengthMedium   Strength = "Medium"
	StrengthHigh     Strength = "High"
	StrengthVeryHigh Strength = "Very High"
)

// Rank maps a strength grade onto an ordinal scale for sorting. Unknown
// grades rank lowest.
func (s Strength) Rank() int {
	switch s {
	case StrengthVeryHigh:
		return 4
	case StrengthHigh:
		return 3
	case StrengthMedium:
		return 2
	case StrengthLow:
		return 1
	default:
		return 0
	}
}

// BreedProfile describes an indigenous cattle breed.
type BreedProfile struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Region    string   `json:"region"`
	MilkYield int      `json:"milk_yield"` // liters per day
	Strength  Strength `json:"strength"`
	Lifespan  int      `json:"lifespan"` // years
	ImageURL  string   `json:"image_url,omitempty"`
}
