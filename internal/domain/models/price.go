package models

// PriceTrend is one month of illustrative average-price data for a breed in
// a region.
type PriceTrend struct {
	ID           int64   `json:"id"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Breed        string  `json:"breed"`
	Region       string  `json:"region"`
	AveragePrice float64 `json:"average_price"`
}

// PriceSummary reports the most recent average price and its change against
// the preceding data point, when one exists.
type PriceSummary struct {
	Latest   float64 `json:"latest"`
	Delta    float64 `json:"delta"`
	HasDelta bool    `json:"has_delta"`
}
