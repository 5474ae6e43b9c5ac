package models

import "time"

// BreedingGoal enumerates the objectives a pairing can be suggested for.
type BreedingGoal string

const (
	GoalHighMilkYield     BreedingGoal = "High Milk Yield"
	GoalDiseaseResistance BreedingGoal = "Disease Resistance"
	GoalDroughtTolerance  BreedingGoal = "Drought Tolerance"
	GoalBreedPurity       BreedingGoal = "Breed Purity"
	GoalTemperament       BreedingGoal = "Temperament"
	GoalDualPurpose       BreedingGoal = "Dual Purpose (Milk & Draft)"
)

// BreedingGoals lists every supported goal, in display order.
func BreedingGoals() []BreedingGoal {
	return []BreedingGoal{
		GoalHighMilkYield,
		GoalDiseaseResistance,
		GoalDroughtTolerance,
		GoalBreedPurity,
		GoalTemperament,
		GoalDualPurpose,
	}
}

// PairStatus is the derived recommendation label for a suggested pairing.
type PairStatus string

const (
	StatusRecommended       PairStatus = "Recommended"
	StatusConsider          PairStatus = "Consider"
	StatusEvaluateCarefully PairStatus = "Evaluate Carefully"
)

// BreedingPair is an append-only log entry for a suggested or tracked
// pairing. GeneticScore and Status are fixed at creation time.
type BreedingPair struct {
	ID           int64        `json:"id"`
	Cattle1      string       `json:"cattle_1"`
	Cattle2      string       `json:"cattle_2"`
	Goal         BreedingGoal `json:"goal"`
	GeneticScore int          `json:"genetic_score"` // 0-100
	Status       PairStatus   `json:"status"`
	Notes        string       `json:"notes"`
	CreatedAt    time.Time    `json:"created_at"`
}

// OffspringRecord tracks a calf born from a recorded pairing.
type OffspringRecord struct {
	ID              int64     `json:"id"`
	Parent1         string    `json:"parent_1"`
	Parent2         string    `json:"parent_2"`
	OffspringID     string    `json:"offspring_id"`
	Breed           string    `json:"breed"`
	Sex             string    `json:"sex"`
	DOB             string    `json:"dob"`
	PredictedTraits string    `json:"predicted_traits,omitempty"`
	ActualTraits    string    `json:"actual_traits,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
