package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe-specific validation errors
var (
	// ErrEmptyRecipeID is returned when a recipe ID is empty or nil.
	ErrEmptyRecipeID = errors.New("recipe ID cannot be empty")

	// ErrEmptyRecipeName is returned when a recipe name is empty.
	ErrEmptyRecipeName = errors.New("recipe name cannot be empty")

	// ErrInvalidStepNumber is returned when a recipe step number is below 1.
	ErrInvalidStepNumber = errors.New("step number must be at least 1")

	// ErrEmptyStepInstruction is returned when a recipe step has no instruction.
	ErrEmptyStepInstruction = errors.New("step instruction cannot be empty")

	// ErrEmptyLineItemAmount is returned when a plain-ingredient line item
	// carries no amount.
	ErrEmptyLineItemAmount = errors.New("line item amount cannot be empty")
)

// RecipeStep is one instruction in a recipe's ordered step sequence.
type RecipeStep struct {
	StepNumber      int    `json:"step_number"`
	Instruction     string `json:"instruction"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	TemperatureF    *int   `json:"temperature_f,omitempty"`
	Tips            string `json:"tips,omitempty"`

	// MaxTempWarning flags steps hot enough to degrade cannabinoids.
	MaxTempWarning bool `json:"max_temp_warning"`
	DecarbStep     bool `json:"decarb_step"`
}

// Validate checks if the RecipeStep has valid data.
func (s *RecipeStep) Validate() error {
	if s.StepNumber < 1 {
		return ErrInvalidStepNumber
	}

	if s.Instruction == "" {
		return ErrEmptyStepInstruction
	}

	return nil
}

// NutritionInfo holds static per-serving nutrition facts. It is input
// supplied by the culinary collaborator, never derived here.
type NutritionInfo struct {
	Calories     int             `json:"calories"`
	FatGrams     decimal.Decimal `json:"fat_grams"`
	CarbsGrams   decimal.Decimal `json:"carbs_grams"`
	ProteinGrams decimal.Decimal `json:"protein_grams"`
	FiberGrams   decimal.Decimal `json:"fiber_grams"`
	SugarGrams   decimal.Decimal `json:"sugar_grams"`
	SodiumMg     int             `json:"sodium_mg"`
}

// DosageInfo is a derived snapshot of a recipe's cannabinoid dosage. It is
// produced by the dosage package and installed on the recipe by the caller;
// it must be recomputed whenever ingredient quantities or servings change.
type DosageInfo struct {
	THCMgPerServing decimal.Decimal `json:"thc_mg_per_serving"`
	CBDMgPerServing decimal.Decimal `json:"cbd_mg_per_serving"`
	TotalTHCMg      decimal.Decimal `json:"total_thc_mg"`
	TotalCBDMg      decimal.Decimal `json:"total_cbd_mg"`
	Servings        int             `json:"servings"`

	// Consumer guidance.
	OnsetTimeMinutes int    `json:"onset_time_minutes"`
	DurationHours    int    `json:"duration_hours"`
	RecommendedFor   string `json:"recommended_for,omitempty"`

	// HighDoseWarning is set when per-serving THC exceeds the configured
	// safety threshold.
	HighDoseWarning bool `json:"high_dose_warning"`
}

// PerServingDose carries the per-serving cannabinoid amounts extracted from
// a DosageInfo.
type PerServingDose struct {
	THCMg decimal.Decimal `json:"thc_mg"`
	CBDMg decimal.Decimal `json:"cbd_mg"`
}

// PerServingAmount divides a total milligram amount across servings.
// A servings count of zero is a degenerate state that yields zero rather
// than an error. Every per-serving figure in this module goes through this
// helper so the division semantics cannot drift.
func PerServingAmount(total decimal.Decimal, servings int) decimal.Decimal {
	if servings <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(servings)))
}

// CalculatePerServing derives the per-serving THC and CBD amounts from the
// stored totals, with the same zero-servings fallback as the dosage
// calculation.
func (d *DosageInfo) CalculatePerServing() PerServingDose {
	return PerServingDose{
		THCMg: PerServingAmount(d.TotalTHCMg, d.Servings),
		CBDMg: PerServingAmount(d.TotalCBDMg, d.Servings),
	}
}

// CannabisLineItem associates a cannabis ingredient with the quantity of it
// used in a recipe, in grams.
type CannabisLineItem struct {
	Ingredient    CannabisIngredient `json:"ingredient"`
	QuantityGrams decimal.Decimal    `json:"quantity_grams"`
}

// Validate checks if the CannabisLineItem has valid data.
func (li *CannabisLineItem) Validate() error {
	if err := li.Ingredient.Validate(); err != nil {
		return err
	}

	if li.QuantityGrams.IsNegative() {
		return ErrNegativeQuantity
	}

	return nil
}

// IngredientLineItem associates a plain ingredient with a free-form amount
// in the ingredient's own unit, e.g. "2 cups".
type IngredientLineItem struct {
	Ingredient Ingredient `json:"ingredient"`
	Amount     string     `json:"amount"`
}

// Validate checks if the IngredientLineItem has valid data.
func (li *IngredientLineItem) Validate() error {
	if err := li.Ingredient.Validate(); err != nil {
		return err
	}

	if li.Amount == "" {
		return ErrEmptyLineItemAmount
	}

	return nil
}

// Recipe is the aggregate root for culinary composition: cannabis and plain
// ingredients with quantities, ordered steps, a servings count, and a
// derived dosage snapshot.
type Recipe struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    RecipeCategory `json:"category"`

	CannabisIngredients []CannabisLineItem   `json:"cannabis_ingredients"`
	Ingredients         []IngredientLineItem `json:"ingredients"`
	Steps               []RecipeStep         `json:"steps"`

	PrepTimeMinutes  int `json:"prep_time_minutes"`
	CookTimeMinutes  int `json:"cook_time_minutes"`
	TotalTimeMinutes int `json:"total_time_minutes"`

	// Servings of zero is a degenerate/unset state; dosage calculations
	// treat it as "no per-serving figures", never as an error.
	Servings   int        `json:"servings"`
	DosageInfo DosageInfo `json:"dosage_info"`

	DietaryLabels []DietaryRestriction `json:"dietary_labels,omitempty"`
	Allergens     []AllergenType       `json:"allergens,omitempty"`
	Nutrition     *NutritionInfo       `json:"nutrition,omitempty"`

	Difficulty          string `json:"difficulty,omitempty"`
	ChefNotes           string `json:"chef_notes,omitempty"`
	TerpenePairingNotes string `json:"terpene_pairing_notes,omitempty"`

	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	provider Provider
}

// NewRecipe creates a Recipe with the given name, category, and servings
// count. The provider supplies the generated id and timestamps and is
// retained for mutation timestamps; pass nil to use the system provider.
// Returns an error if validation fails.
func NewRecipe(p Provider, name string, category RecipeCategory, servings int) (*Recipe, error) {
	p = orSystem(p)
	now := p.Now()
	recipe := &Recipe{
		ID:         p.NewID(),
		Name:       name,
		Category:   category,
		Servings:   servings,
		Difficulty: "medium",
		CreatedAt:  now,
		UpdatedAt:  now,
		provider:   p,
	}

	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	return recipe, nil
}

// Validate checks if the Recipe has valid data.
// Returns an error if any field fails validation.
func (r *Recipe) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRecipeID
	}

	if r.Name == "" {
		return ErrEmptyRecipeName
	}

	if !isValidRecipeCategory(r.Category) {
		return ErrInvalidRecipeCategory
	}

	if r.Servings < 0 {
		return ErrNegativeServings
	}

	for i := range r.CannabisIngredients {
		if err := r.CannabisIngredients[i].Validate(); err != nil {
			return err
		}
	}

	for i := range r.Ingredients {
		if err := r.Ingredients[i].Validate(); err != nil {
			return err
		}
	}

	for i := range r.Steps {
		if err := r.Steps[i].Validate(); err != nil {
			return err
		}
	}

	for _, d := range r.DietaryLabels {
		if !isValidDietaryRestriction(d) {
			return ErrInvalidDietaryRestriction
		}
	}

	for _, a := range r.Allergens {
		if !isValidAllergenType(a) {
			return ErrInvalidAllergenType
		}
	}

	return nil
}

// touch bumps the UpdatedAt timestamp after a mutation.
func (r *Recipe) touch() {
	r.UpdatedAt = orSystem(r.provider).Now()
}

// AddCannabisIngredient appends a cannabis ingredient with its quantity in
// grams and updates the UpdatedAt timestamp. The embedded dosage snapshot
// is now stale; callers recompute it via the dosage service and install the
// result with SetDosageInfo. Returns an error if the line item is invalid.
func (r *Recipe) AddCannabisIngredient(ingredient CannabisIngredient, quantityGrams decimal.Decimal) error {
	item := CannabisLineItem{Ingredient: ingredient, QuantityGrams: quantityGrams}
	if err := item.Validate(); err != nil {
		return err
	}

	r.CannabisIngredients = append(r.CannabisIngredients, item)
	r.touch()
	return nil
}

// AddIngredient appends a plain ingredient with its amount and updates the
// UpdatedAt timestamp. Returns an error if the line item is invalid.
func (r *Recipe) AddIngredient(ingredient Ingredient, amount string) error {
	item := IngredientLineItem{Ingredient: ingredient, Amount: amount}
	if err := item.Validate(); err != nil {
		return err
	}

	r.Ingredients = append(r.Ingredients, item)
	r.touch()
	return nil
}

// AddStep appends a recipe step and updates the UpdatedAt timestamp.
// Returns an error if the step is invalid.
func (r *Recipe) AddStep(step RecipeStep) error {
	if err := step.Validate(); err != nil {
		return err
	}

	r.Steps = append(r.Steps, step)
	r.touch()
	return nil
}

// SetServings updates the servings count and the UpdatedAt timestamp. The
// embedded dosage snapshot becomes stale and must be recomputed. Returns
// ErrNegativeServings for negative counts.
func (r *Recipe) SetServings(servings int) error {
	if servings < 0 {
		return ErrNegativeServings
	}

	r.Servings = servings
	r.touch()
	return nil
}

// SetDosageInfo installs a freshly computed dosage snapshot and updates the
// UpdatedAt timestamp.
func (r *Recipe) SetDosageInfo(info DosageInfo) {
	r.DosageInfo = info
	r.touch()
}
