package dosage

import (
	"github.com/shopspring/decimal"

	"github.com/verdantlabs/infusion-core/domain"
)

// sumIngredientDoses accumulates the THC and CBD contributions of every
// cannabis line item in a recipe.
//
// Each line item contributes potency-per-gram times quantity-in-grams
// (CannabisIngredient.CalculateTHCDose / CalculateCBDDose). Decimal
// addition is commutative and associative, so line item order never
// affects the totals. An ingredient without lab data has zero potency and
// simply contributes zero; that is a valid state, not an error.
func sumIngredientDoses(items []domain.CannabisLineItem) (totalTHC, totalCBD decimal.Decimal) {
	totalTHC = decimal.Zero
	totalCBD = decimal.Zero

	for i := range items {
		totalTHC = totalTHC.Add(items[i].Ingredient.CalculateTHCDose(items[i].QuantityGrams))
		totalCBD = totalCBD.Add(items[i].Ingredient.CalculateCBDDose(items[i].QuantityGrams))
	}

	return totalTHC, totalCBD
}

// buildDosageInfo derives a fresh dosage snapshot from cannabinoid totals
// and a servings count.
//
// Per-serving figures divide the totals across servings through
// domain.PerServingAmount, which defines the zero-servings fallback: a
// degenerate servings count of zero yields zero per-serving values rather
// than an error. The high-dose warning is raised only when servings is
// positive and the per-serving THC strictly exceeds the configured
// threshold; a per-serving value exactly at the threshold does not warn.
func buildDosageInfo(
	totalTHC, totalCBD decimal.Decimal,
	servings int,
	params *Params,
) domain.DosageInfo {
	thcPerServing := domain.PerServingAmount(totalTHC, servings)

	return domain.DosageInfo{
		THCMgPerServing:  thcPerServing,
		CBDMgPerServing:  domain.PerServingAmount(totalCBD, servings),
		TotalTHCMg:       totalTHC,
		TotalCBDMg:       totalCBD,
		Servings:         servings,
		OnsetTimeMinutes: params.DefaultOnsetTimeMinutes,
		DurationHours:    params.DefaultDurationHours,
		HighDoseWarning:  servings > 0 && thcPerServing.GreaterThan(params.HighDoseThresholdMg),
	}
}
