package sustainability

import (
	"math"
	"testing"
)

func TestEstimateCarbon(t *testing.T) {
	got := EstimateCarbon(CarbonInput{
		FuelLiters:     100,
		NitrogenKg:     20,
		CattleCount:    4,
		RicePaddyAcres: 2,
	})

	if math.Abs(got.FuelKgCO2e-268) > 1e-9 {
		t.Errorf("fuel = %v, want 268", got.FuelKgCO2e)
	}
	if math.Abs(got.FertilizerKgCO2e-90) > 1e-9 {
		t.Errorf("fertilizer = %v, want 90", got.FertilizerKgCO2e)
	}
	if math.Abs(got.LivestockKgCO2e-600) > 1e-9 {
		t.Errorf("livestock = %v, want 600", got.LivestockKgCO2e)
	}
	if math.Abs(got.RiceKgCO2e-100) > 1e-9 {
		t.Errorf("rice = %v, want 100", got.RiceKgCO2e)
	}
	if math.Abs(got.TotalKgCO2e-1058) > 1e-9 {
		t.Errorf("total = %v, want 1058", got.TotalKgCO2e)
	}
}

func TestEstimateCarbonZeroInput(t *testing.T) {
	got := EstimateCarbon(CarbonInput{})
	if got.TotalKgCO2e != 0 {
		t.Errorf("zero input total = %v, want 0", got.TotalKgCO2e)
	}
}

func TestEstimateWater(t *testing.T) {
	got := EstimateWater(WaterInput{
		FieldAcres:   2,
		DailyDepthMM: 5,
		DaysPerMonth: 20,
	})

	// 4046.86 m2/acre * 0.005 m * 1000 L/m3 = 20234.3 L/acre/day.
	if math.Abs(got.LitersPerAcrePerDay-20234.3) > 1e-6 {
		t.Errorf("per acre per day = %v, want 20234.3", got.LitersPerAcrePerDay)
	}
	if math.Abs(got.MonthlyLiters-809372) > 1e-6 {
		t.Errorf("monthly = %v, want 809372", got.MonthlyLiters)
	}
}

func TestEstimateWaterScalesLinearly(t *testing.T) {
	base := EstimateWater(WaterInput{FieldAcres: 1, DailyDepthMM: 5, DaysPerMonth: 10})
	double := EstimateWater(WaterInput{FieldAcres: 2, DailyDepthMM: 5, DaysPerMonth: 10})

	if math.Abs(double.MonthlyLiters-2*base.MonthlyLiters) > 1e-6 {
		t.Errorf("doubling acreage: %v vs %v", double.MonthlyLiters, base.MonthlyLiters)
	}
}
