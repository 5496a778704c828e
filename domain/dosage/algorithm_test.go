package dosage

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/verdantlabs/infusion-core/domain"
)

// lineItem builds a cannabis line item with the given THC/CBD potency per
// gram and quantity in grams.
func lineItem(t *testing.T, name, thcPerGram, cbdPerGram, grams string) domain.CannabisLineItem {
	t.Helper()

	ingredient, err := domain.NewCannabisIngredient(nil, name,
		domain.IngredientTypeDistillate, domain.IngredientFormLiquid,
		decimal.RequireFromString(thcPerGram), decimal.RequireFromString(cbdPerGram))
	if err != nil {
		t.Fatalf("failed to build ingredient: %v", err)
	}

	return domain.CannabisLineItem{
		Ingredient:    *ingredient,
		QuantityGrams: decimal.RequireFromString(grams),
	}
}

func TestSumIngredientDoses(t *testing.T) {
	t.Parallel() // Enable parallel execution
	testCases := []struct {
		name        string
		items       []domain.CannabisLineItem
		expectedTHC string
		expectedCBD string
	}{
		{
			name:        "no ingredients sums to zero",
			items:       nil,
			expectedTHC: "0",
			expectedCBD: "0",
		},
		{
			name: "single ingredient",
			items: []domain.CannabisLineItem{
				lineItem(t, "Distillate", "10", "2", "2"),
			},
			expectedTHC: "20",
			expectedCBD: "4",
		},
		{
			name: "two ingredients accumulate",
			items: []domain.CannabisLineItem{
				lineItem(t, "Ingredient A", "10", "0", "2"),
				lineItem(t, "Ingredient B", "5", "0", "1"),
			},
			expectedTHC: "25",
			expectedCBD: "0",
		},
		{
			name: "fractional potency stays exact",
			items: []domain.CannabisLineItem{
				lineItem(t, "Infused Butter", "10.5", "0.4", "2.25"),
			},
			expectedTHC: "23.625",
			expectedCBD: "0.9",
		},
		{
			name: "untested ingredient contributes zero",
			items: []domain.CannabisLineItem{
				lineItem(t, "Ingredient A", "10", "0", "2"),
				lineItem(t, "Untested Oil", "0", "0", "50"),
			},
			expectedTHC: "20",
			expectedCBD: "0",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			totalTHC, totalCBD := sumIngredientDoses(tc.items)

			if !totalTHC.Equal(decimal.RequireFromString(tc.expectedTHC)) {
				t.Errorf("Expected total THC %s, got %s", tc.expectedTHC, totalTHC)
			}
			if !totalCBD.Equal(decimal.RequireFromString(tc.expectedCBD)) {
				t.Errorf("Expected total CBD %s, got %s", tc.expectedCBD, totalCBD)
			}
		})
	}
}

func TestSumIngredientDosesOrderIndependent(t *testing.T) {
	t.Parallel() // Enable parallel execution
	a := lineItem(t, "Ingredient A", "10.5", "1.1", "2.25")
	b := lineItem(t, "Ingredient B", "5.25", "0.2", "1.5")
	c := lineItem(t, "Ingredient C", "0.125", "3", "8")

	forwardTHC, forwardCBD := sumIngredientDoses([]domain.CannabisLineItem{a, b, c})
	reverseTHC, reverseCBD := sumIngredientDoses([]domain.CannabisLineItem{c, b, a})

	if !forwardTHC.Equal(reverseTHC) || !forwardCBD.Equal(reverseCBD) {
		t.Errorf("Expected order-independent totals, got %s/%s and %s/%s",
			forwardTHC, forwardCBD, reverseTHC, reverseCBD)
	}
}

func TestBuildDosageInfo(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name            string
		totalTHC        string
		totalCBD        string
		servings        int
		expectedPerTHC  string
		expectedPerCBD  string
		expectedWarning bool
	}{
		{
			name:            "per-serving division",
			totalTHC:        "25",
			totalCBD:        "5",
			servings:        5,
			expectedPerTHC:  "5",
			expectedPerCBD:  "1",
			expectedWarning: false,
		},
		{
			name:            "single serving carries the full dose",
			totalTHC:        "25",
			totalCBD:        "0",
			servings:        1,
			expectedPerTHC:  "25",
			expectedPerCBD:  "0",
			expectedWarning: true,
		},
		{
			name:            "zero servings yields zero and no warning",
			totalTHC:        "25",
			totalCBD:        "5",
			servings:        0,
			expectedPerTHC:  "0",
			expectedPerCBD:  "0",
			expectedWarning: false,
		},
		{
			name:            "exactly at the threshold does not warn",
			totalTHC:        "30",
			totalCBD:        "0",
			servings:        3,
			expectedPerTHC:  "10",
			expectedPerCBD:  "0",
			expectedWarning: false,
		},
		{
			name:            "just above the threshold warns",
			totalTHC:        "30.003",
			totalCBD:        "0",
			servings:        3,
			expectedPerTHC:  "10.001",
			expectedPerCBD:  "0",
			expectedWarning: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			info := buildDosageInfo(
				decimal.RequireFromString(tc.totalTHC),
				decimal.RequireFromString(tc.totalCBD),
				tc.servings,
				params,
			)

			if !info.THCMgPerServing.Equal(decimal.RequireFromString(tc.expectedPerTHC)) {
				t.Errorf("Expected %s mg THC per serving, got %s", tc.expectedPerTHC, info.THCMgPerServing)
			}

			if !info.CBDMgPerServing.Equal(decimal.RequireFromString(tc.expectedPerCBD)) {
				t.Errorf("Expected %s mg CBD per serving, got %s", tc.expectedPerCBD, info.CBDMgPerServing)
			}

			if info.HighDoseWarning != tc.expectedWarning {
				t.Errorf("Expected high dose warning %v, got %v", tc.expectedWarning, info.HighDoseWarning)
			}

			if info.Servings != tc.servings {
				t.Errorf("Expected servings %d, got %d", tc.servings, info.Servings)
			}

			if info.OnsetTimeMinutes != params.DefaultOnsetTimeMinutes {
				t.Errorf("Expected onset guidance %d, got %d",
					params.DefaultOnsetTimeMinutes, info.OnsetTimeMinutes)
			}

			if info.DurationHours != params.DefaultDurationHours {
				t.Errorf("Expected duration guidance %d, got %d",
					params.DefaultDurationHours, info.DurationHours)
			}
		})
	}
}

func TestBuildDosageInfoMatchesPerServingHelper(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()
	totalTHC := decimal.RequireFromString("25")
	totalCBD := decimal.RequireFromString("7")

	info := buildDosageInfo(totalTHC, totalCBD, 3, params)
	dose := info.CalculatePerServing()

	// Both paths divide through the same helper, so they cannot drift.
	if !info.THCMgPerServing.Equal(dose.THCMg) {
		t.Errorf("Expected snapshot %s to match helper %s", info.THCMgPerServing, dose.THCMg)
	}
	if !info.CBDMgPerServing.Equal(dose.CBDMg) {
		t.Errorf("Expected snapshot %s to match helper %s", info.CBDMgPerServing, dose.CBDMg)
	}
}
