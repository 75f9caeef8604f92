package roi

import (
	"math"

	"Backend-WMS-ROI/src/models"
)

// Inputs are the projection knobs. Warehouse numbers come from the company
// profile; the gain/cost fields come from questionnaire answers with these
// defaults when unanswered.
type Inputs struct {
	Warehouse models.WarehouseProfile

	PickEfficiencyGainPct float64 // share of labor cost saved, 0..1
	CostPerError          float64 // fully loaded cost of one mis-pick
	ErrorReductionPct     float64 // share of errors eliminated, 0..1
	CarryingRatePct       float64 // annual inventory carrying rate, 0..1
	ShrinkReductionPct    float64 // share of carrying cost recovered, 0..1
	ImplementationCost    float64
	DiscountRate          float64 // for the 5-year NPV
}

const (
	DefaultPickEfficiencyGain = 0.15
	DefaultCostPerError       = 22.0
	DefaultErrorReduction     = 0.60
	DefaultCarryingRate       = 0.20
	DefaultShrinkReduction    = 0.10
	DefaultDiscountRate       = 0.08

	hoursPerYear = 2080
	npvHorizon   = 5

	// PaybackNotReached marks a projection whose benefit never covers the
	// implementation cost.
	PaybackNotReached = -1
)

// Compute derives the ROI projection from the inputs. Percentages are
// clamped to [0,1] so a bad answer can't produce a negative cost.
func Compute(in Inputs) models.RoiSnapshot {
	w := in.Warehouse

	laborCost := float64(w.Pickers) * w.WagePerHour * hoursPerYear
	laborSavings := laborCost * clamp01(in.PickEfficiencyGainPct)

	annualErrors := float64(w.OrdersPerDay) * 365 * clamp01(w.ErrorRatePct)
	errorSavings := annualErrors * in.CostPerError * clamp01(in.ErrorReductionPct)

	inventorySavings := w.InventoryValue * clamp01(in.CarryingRatePct) * clamp01(in.ShrinkReductionPct)

	benefit := laborSavings + errorSavings + inventorySavings

	payback := float64(PaybackNotReached)
	if benefit > 0 && in.ImplementationCost >= 0 {
		payback = in.ImplementationCost / (benefit / 12)
	}

	rate := in.DiscountRate
	if rate <= 0 {
		rate = DefaultDiscountRate
	}
	npv := -in.ImplementationCost
	for year := 1; year <= npvHorizon; year++ {
		npv += benefit / math.Pow(1+rate, float64(year))
	}

	return models.RoiSnapshot{
		AnnualLaborCost:    round2(laborCost),
		LaborSavings:       round2(laborSavings),
		ErrorSavings:       round2(errorSavings),
		InventorySavings:   round2(inventorySavings),
		TotalAnnualBenefit: round2(benefit),
		ImplementationCost: round2(in.ImplementationCost),
		PaybackMonths:      roundPayback(payback),
		FiveYearNPV:        round2(npv),
		DiscountRate:       rate,
	}
}

// InputsFromAnswers overlays questionnaire answers onto the defaults.
// Recognized keys: pickEfficiencyGainPct, costPerError, errorReductionPct,
// carryingRatePct, shrinkReductionPct, implementationCost.
func InputsFromAnswers(w models.WarehouseProfile, answers map[string]interface{}, discountRate float64) Inputs {
	in := Inputs{
		Warehouse:             w,
		PickEfficiencyGainPct: DefaultPickEfficiencyGain,
		CostPerError:          DefaultCostPerError,
		ErrorReductionPct:     DefaultErrorReduction,
		CarryingRatePct:       DefaultCarryingRate,
		ShrinkReductionPct:    DefaultShrinkReduction,
		DiscountRate:          discountRate,
	}

	if v, ok := asFloat(answers["pickEfficiencyGainPct"]); ok {
		in.PickEfficiencyGainPct = v
	}
	if v, ok := asFloat(answers["costPerError"]); ok {
		in.CostPerError = v
	}
	if v, ok := asFloat(answers["errorReductionPct"]); ok {
		in.ErrorReductionPct = v
	}
	if v, ok := asFloat(answers["carryingRatePct"]); ok {
		in.CarryingRatePct = v
	}
	if v, ok := asFloat(answers["shrinkReductionPct"]); ok {
		in.ShrinkReductionPct = v
	}
	if v, ok := asFloat(answers["implementationCost"]); ok {
		in.ImplementationCost = v
	}

	return in
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundPayback(v float64) float64 {
	if v == PaybackNotReached {
		return v
	}
	return math.Round(v*10) / 10
}
