// Package valuation implements the cattle price estimation heuristic and
// price-trend summaries.
package valuation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
)

const (
	basePrice  = 30000
	floorPrice = 15000
	bandWidth  = 0.15 // ± band around the point estimate
)

// DefaultBreedFactors maps breed names to their valuation multipliers.
// Breeds not listed fall back to a neutral 1.0.
var DefaultBreedFactors = map[string]float64{
	"Gir":              1.8,
	"Sahiwal":          1.9,
	"Red Sindhi":       1.7,
	"Tharparkar":       1.6,
	"Ongole":           1.5,
	"Kankrej":          1.6,
	"Rathi":            1.5,
	"Murrah (Buffalo)": 2.0,
	"Crossbred":        1.2,
	"Punganur":         1.0,
	"Amrit Mahal":      1.3,
	"Hallikar":         1.4,
	"Deoni":            1.4,
	"Krishna Valley":   1.4,
	"Malnad Gidda":     1.1,
}

var healthFactors = map[models.HealthStatus]float64{
	models.HealthExcellent: 1.1,
	models.HealthGood:      1.0,
	models.HealthFair:      0.85,
	models.HealthPoor:      0.6,
}

// TrendReader loads historical price rows from the store.
type TrendReader interface {
	PriceTrends(ctx context.Context) ([]models.PriceTrend, error)
}

// Service exposes the estimator together with trend lookups.
type Service struct {
	trends  TrendReader
	factors map[string]float64
	logger  *zap.Logger
}

// NewService builds a valuation service. A nil factor table uses
// DefaultBreedFactors.
func NewService(trends TrendReader, factors map[string]float64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if factors == nil {
		factors = DefaultBreedFactors
	}
	return &Service{trends: trends, factors: factors, logger: logger}
}

// Estimate computes the valuation band for the given attributes.
//
// The pipeline multiplies a running price in a fixed order: breed factor,
// age factor, weight factor, milk factor, health factor, pregnancy bonus,
// then a floor. The order and constants are load-bearing; callers relying
// on numeric parity must not reorder the steps. Inputs are trusted: the
// function has no failure path, and out-of-range values produce degenerate
// but well-defined output.
func (s *Service) Estimate(input models.ValuationInput) models.ValuationRange {
	return Estimate(input, s.factors)
}

// Estimate is the pure form of the pipeline, usable without a Service.
func Estimate(input models.ValuationInput, factors map[string]float64) models.ValuationRange {
	price := float64(basePrice)

	factor, ok := factors[input.Breed]
	if !ok {
		factor = 1.0
	}
	price *= factor

	price *= ageFactor(input.AgeYears)
	price *= weightFactor(input.WeightKg)

	// Yields of one liter or less skip the milk step entirely; that is the
	// explicit "not applicable" path for males and dry animals.
	if input.MilkYield > 1 {
		price *= 1.0 + input.MilkYield*0.05
	}

	health, ok := healthFactors[input.Health]
	if !ok {
		health = 0.9
	}
	price *= health

	if input.Pregnant {
		price *= 1.1
	}

	if price < floorPrice {
		price = floorPrice
	}

	return models.ValuationRange{
		Low:  price * (1 - bandWidth),
		High: price * (1 + bandWidth),
	}
}

func ageFactor(age float64) float64 {
	switch {
	case age >= 2.5 && age <= 8:
		return 1.15
	case age < 2.5:
		return 0.8 + age/5
	default:
		factor := 1.1 - (age-8)*0.05
		if factor < 0.6 {
			factor = 0.6
		}
		return factor
	}
}

func weightFactor(weight float64) float64 {
	if weight > 600 {
		weight = 600
	}
	return 1.0 + (weight-300)*0.001
}

// Trends returns the historical rows in chronological order.
func (s *Service) Trends(ctx context.Context) ([]models.PriceTrend, error) {
	trends, err := s.trends.PriceTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("load price trends: %w", err)
	}
	return trends, nil
}

// Summary reports the latest average price and its delta against the
// preceding data point.
func (s *Service) Summary(ctx context.Context) (models.PriceSummary, error) {
	trends, err := s.trends.PriceTrends(ctx)
	if err != nil {
		return models.PriceSummary{}, fmt.Errorf("load price trends: %w", err)
	}
	if len(trends) == 0 {
		return models.PriceSummary{}, nil
	}

	summary := models.PriceSummary{Latest: trends[len(trends)-1].AveragePrice}
	if len(trends) > 1 {
		summary.Delta = summary.Latest - trends[len(trends)-2].AveragePrice
		summary.HasDelta = true
	}
	return summary, nil
}
