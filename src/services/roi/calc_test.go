package roi

import (
	"testing"

	"Backend-WMS-ROI/src/models"

	"github.com/stretchr/testify/assert"
)

func testWarehouse() models.WarehouseProfile {
	return models.WarehouseProfile{
		Sites:          2,
		SkuCount:       12000,
		OrdersPerDay:   1000,
		Pickers:        20,
		WagePerHour:    18,
		ErrorRatePct:   0.02,
		InventoryValue: 2_000_000,
	}
}

func TestComputeBasicProjection(t *testing.T) {
	in := Inputs{
		Warehouse:             testWarehouse(),
		PickEfficiencyGainPct: 0.15,
		CostPerError:          20,
		ErrorReductionPct:     0.5,
		CarryingRatePct:       0.2,
		ShrinkReductionPct:    0.1,
		ImplementationCost:    250_000,
		DiscountRate:          0.08,
	}

	snap := Compute(in)

	// 20 pickers x 18/h x 2080h
	assert.Equal(t, 748800.0, snap.AnnualLaborCost)
	assert.Equal(t, 112320.0, snap.LaborSavings)
	// 1000 orders x 365 x 2% x $20 x 50%
	assert.Equal(t, 73000.0, snap.ErrorSavings)
	// 2M x 20% x 10%
	assert.Equal(t, 40000.0, snap.InventorySavings)
	assert.Equal(t, 225320.0, snap.TotalAnnualBenefit)

	// 250k / (225320/12) ≈ 13.3 months
	assert.InDelta(t, 13.3, snap.PaybackMonths, 0.05)
	assert.Greater(t, snap.FiveYearNPV, 0.0)
}

func TestComputeClampsPercentages(t *testing.T) {
	in := Inputs{
		Warehouse:             testWarehouse(),
		PickEfficiencyGainPct: 1.8, // clamped to 1
		CostPerError:          20,
		ErrorReductionPct:     -0.5, // clamped to 0
	}

	snap := Compute(in)

	assert.Equal(t, snap.AnnualLaborCost, snap.LaborSavings)
	assert.Equal(t, 0.0, snap.ErrorSavings)
}

func TestComputeZeroBenefitPayback(t *testing.T) {
	in := Inputs{
		Warehouse:          models.WarehouseProfile{},
		ImplementationCost: 100_000,
	}

	snap := Compute(in)

	assert.Equal(t, 0.0, snap.TotalAnnualBenefit)
	assert.Equal(t, float64(PaybackNotReached), snap.PaybackMonths)
	assert.Equal(t, -100000.0, snap.FiveYearNPV)
}

func TestComputeDefaultDiscountRate(t *testing.T) {
	snap := Compute(Inputs{Warehouse: testWarehouse(), DiscountRate: 0})
	assert.Equal(t, DefaultDiscountRate, snap.DiscountRate)
}

func TestInputsFromAnswersOverlaysDefaults(t *testing.T) {
	answers := map[string]interface{}{
		"pickEfficiencyGainPct": 0.25,
		"implementationCost":    300000,
		"costPerError":          int32(30),
	}

	in := InputsFromAnswers(testWarehouse(), answers, 0.1)

	assert.Equal(t, 0.25, in.PickEfficiencyGainPct)
	assert.Equal(t, 300000.0, in.ImplementationCost)
	assert.Equal(t, 30.0, in.CostPerError)
	// untouched keys keep defaults
	assert.Equal(t, DefaultErrorReduction, in.ErrorReductionPct)
	assert.Equal(t, DefaultCarryingRate, in.CarryingRatePct)
	assert.Equal(t, 0.1, in.DiscountRate)
}

func TestInputsFromAnswersIgnoresBadTypes(t *testing.T) {
	answers := map[string]interface{}{
		"costPerError": "not a number",
	}

	in := InputsFromAnswers(testWarehouse(), answers, 0)
	assert.Equal(t, DefaultCostPerError, in.CostPerError)
}
