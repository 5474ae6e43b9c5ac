package models

// HealthStatus grades the overall condition of an animal for valuation.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "Excellent"
	HealthGood      HealthStatus = "Good"
	HealthFair      HealthStatus = "Fair"
	HealthPoor      HealthStatus = "Poor"
)

// ValuationInput carries the attributes the estimator scores. It is never
// persisted; callers are responsible for range-checking numeric fields.
type ValuationInput struct {
	Breed     string       `json:"breed"`
	AgeYears  float64      `json:"age_years"`
	WeightKg  float64      `json:"weight_kg"`
	MilkYield float64      `json:"milk_yield"` // liters/day, 0 for males
	Health    HealthStatus `json:"health"`
	Pregnant  bool         `json:"pregnant"`
}

// ValuationRange is a fixed band around the point estimate, not a
// statistical confidence interval.
type ValuationRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}
