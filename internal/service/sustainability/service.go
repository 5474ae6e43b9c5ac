package sustainability

import "go.uber.org/zap"

// Emission factors are monthly approximations: kg CO2e per liter of
// diesel, per kg of applied nitrogen, per head of adult cattle
// (enteric fermentation, annual figure spread over 12 months) and per
// acre of rice paddy.
const (
	dieselFactor    = 2.68
	nitrogenFactor  = 4.5
	cattleAnnual    = 1800.0
	ricePaddyFactor = 50.0

	squareMetersPerAcre = 4046.86
)

type CarbonInput struct {
	FuelLiters     float64 `json:"fuel_liters"`
	NitrogenKg     float64 `json:"nitrogen_kg"`
	CattleCount    int     `json:"cattle_count"`
	RicePaddyAcres float64 `json:"rice_paddy_acres"`
}

type CarbonEstimate struct {
	FuelKgCO2e       float64 `json:"fuel_kg_co2e"`
	FertilizerKgCO2e float64 `json:"fertilizer_kg_co2e"`
	LivestockKgCO2e  float64 `json:"livestock_kg_co2e"`
	RiceKgCO2e       float64 `json:"rice_kg_co2e"`
	TotalKgCO2e      float64 `json:"total_kg_co2e"`
}

type WaterInput struct {
	FieldAcres   float64 `json:"field_acres"`
	DailyDepthMM float64 `json:"daily_depth_mm"`
	DaysPerMonth int     `json:"days_per_month"`
}

type WaterEstimate struct {
	LitersPerAcrePerDay float64 `json:"liters_per_acre_per_day"`
	MonthlyLiters       float64 `json:"monthly_liters"`
}

// EstimateCarbon returns an approximate monthly farm footprint. The
// factors are coarse and meant for relative comparison, not reporting.
func EstimateCarbon(in CarbonInput) CarbonEstimate {
	est := CarbonEstimate{
		FuelKgCO2e:       in.FuelLiters * dieselFactor,
		FertilizerKgCO2e: in.NitrogenKg * nitrogenFactor,
		LivestockKgCO2e:  float64(in.CattleCount) * (cattleAnnual / 12),
		RiceKgCO2e:       in.RicePaddyAcres * ricePaddyFactor,
	}
	est.TotalKgCO2e = est.FuelKgCO2e + est.FertilizerKgCO2e + est.LivestockKgCO2e + est.RiceKgCO2e
	return est
}

// EstimateWater converts an irrigation depth in millimeters per day
// into monthly liters over the irrigated area.
func EstimateWater(in WaterInput) WaterEstimate {
	perAcre := squareMetersPerAcre * (in.DailyDepthMM / 1000) * 1000
	return WaterEstimate{
		LitersPerAcrePerDay: perAcre,
		MonthlyLiters:       in.FieldAcres * perAcre * float64(in.DaysPerMonth),
	}
}

// Service wraps the pure estimators so handlers can log requests the
// same way the other services do.
type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger.Named("sustainability")}
}

func (s *Service) Carbon(in CarbonInput) CarbonEstimate {
	est := EstimateCarbon(in)
	s.logger.Debug("carbon footprint estimated",
		zap.Float64("total_kg_co2e", est.TotalKgCO2e),
		zap.Int("cattle_count", in.CattleCount))
	return est
}

func (s *Service) Water(in WaterInput) WaterEstimate {
	est := EstimateWater(in)
	s.logger.Debug("water usage estimated",
		zap.Float64("monthly_liters", est.MonthlyLiters),
		zap.Float64("field_acres", in.FieldAcres))
	return est
}
