package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ingredient-specific validation errors
var (
	// ErrEmptyIngredientID is returned when an ingredient ID is empty or nil.
	ErrEmptyIngredientID = errors.New("ingredient ID cannot be empty")

	// ErrEmptyIngredientName is returned when an ingredient name is empty.
	ErrEmptyIngredientName = errors.New("ingredient name cannot be empty")

	// ErrUnexpectedDecarbParams is returned when decarboxylation parameters
	// are set on an ingredient that is not decarboxylated.
	ErrUnexpectedDecarbParams = errors.New("decarb parameters require a decarboxylated ingredient")
)

// CannabisIngredient is a sourced, potent ingredient with an optional COA
// reference and terpene profile. Identity is assigned at ingestion time;
// potency and lab data are immutable thereafter, while sourcing and lot
// metadata may be updated by inventory collaborators.
type CannabisIngredient struct {
	ID   uuid.UUID      `json:"id"`
	Name string         `json:"name"`
	Type IngredientType `json:"ingredient_type"`
	Form IngredientForm `json:"form"`

	// Lab data, absent until the ingredient has been tested.
	COAReference   *CannabisCOAReference `json:"coa_reference,omitempty"`
	TerpeneProfile *TerpeneProfile       `json:"terpene_profile,omitempty"`

	// Potency per gram of ingredient mass.
	THCMgPerGram decimal.Decimal `json:"thc_mg_per_gram"`
	CBDMgPerGram decimal.Decimal `json:"cbd_mg_per_gram"`

	// Activation. DecarbTempF and DecarbTimeMinutes are only meaningful
	// when IsDecarboxylated is true.
	IsDecarboxylated  bool `json:"is_decarboxylated"`
	DecarbTempF       *int `json:"decarb_temp_f,omitempty"`
	DecarbTimeMinutes *int `json:"decarb_time_minutes,omitempty"`

	// Storage envelope.
	StorageTempMinF int  `json:"storage_temp_min_f"`
	StorageTempMaxF int  `json:"storage_temp_max_f"`
	ShelfLifeDays   int  `json:"shelf_life_days"`
	LightSensitive  bool `json:"light_sensitive"`

	// Sourcing.
	SupplierID   string     `json:"supplier_id,omitempty"`
	SupplierName string     `json:"supplier_name,omitempty"`
	LotNumber    string     `json:"lot_number,omitempty"`
	ReceivedDate *time.Time `json:"received_date,omitempty"`
}

// NewCannabisIngredient creates a cannabis ingredient with the given name,
// type, form, and per-gram potency. The provider supplies the generated id;
// pass nil to use the system provider. Storage defaults assume a cool, dark
// pantry. Returns an error if validation fails.
func NewCannabisIngredient(
	p Provider,
	name string,
	ingredientType IngredientType,
	form IngredientForm,
	thcMgPerGram, cbdMgPerGram decimal.Decimal,
) (*CannabisIngredient, error) {
	ingredient := &CannabisIngredient{
		ID:               orSystem(p).NewID(),
		Name:             name,
		Type:             ingredientType,
		Form:             form,
		THCMgPerGram:     thcMgPerGram,
		CBDMgPerGram:     cbdMgPerGram,
		IsDecarboxylated: true,
		StorageTempMinF:  60,
		StorageTempMaxF:  70,
		ShelfLifeDays:    365,
		LightSensitive:   true,
	}

	if err := ingredient.Validate(); err != nil {
		return nil, err
	}

	return ingredient, nil
}

// Validate checks if the CannabisIngredient has valid data.
// Returns an error if any field fails validation.
func (ci *CannabisIngredient) Validate() error {
	if ci.ID == uuid.Nil {
		return ErrEmptyIngredientID
	}

	if ci.Name == "" {
		return ErrEmptyIngredientName
	}

	if !isValidIngredientType(ci.Type) {
		return ErrInvalidIngredientType
	}

	if !isValidIngredientForm(ci.Form) {
		return ErrInvalidIngredientForm
	}

	if ci.THCMgPerGram.IsNegative() || ci.CBDMgPerGram.IsNegative() {
		return ErrNegativePotency
	}

	if !ci.IsDecarboxylated && (ci.DecarbTempF != nil || ci.DecarbTimeMinutes != nil) {
		return ErrUnexpectedDecarbParams
	}

	if ci.COAReference != nil {
		if err := ci.COAReference.Validate(); err != nil {
			return err
		}
	}

	if ci.TerpeneProfile != nil {
		if err := ci.TerpeneProfile.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// CalculateTHCDose returns the THC dose in milligrams contributed by the
// given quantity of this ingredient. Exact decimal arithmetic, no rounding
// or clamping; display rounding is the caller's concern. Quantities are
// validated non-negative where line items are built.
func (ci *CannabisIngredient) CalculateTHCDose(grams decimal.Decimal) decimal.Decimal {
	return ci.THCMgPerGram.Mul(grams)
}

// CalculateCBDDose returns the CBD dose in milligrams contributed by the
// given quantity of this ingredient.
func (ci *CannabisIngredient) CalculateCBDDose(grams decimal.Decimal) decimal.Decimal {
	return ci.CBDMgPerGram.Mul(grams)
}

// Ingredient is a non-potent culinary ingredient with allergen and dietary
// tags. It has no dosage behavior.
type Ingredient struct {
	ID         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	Category   string               `json:"category,omitempty"`
	Unit       string               `json:"unit,omitempty"`
	Allergens  []AllergenType       `json:"allergens,omitempty"`
	Dietary    []DietaryRestriction `json:"dietary_info,omitempty"`
	SupplierID string               `json:"supplier_id,omitempty"`
}

// NewIngredient creates a non-cannabis ingredient with the given name.
// The provider supplies the generated id; pass nil to use the system
// provider. Returns an error if validation fails.
func NewIngredient(p Provider, name, category, unit string) (*Ingredient, error) {
	ingredient := &Ingredient{
		ID:       orSystem(p).NewID(),
		Name:     name,
		Category: category,
		Unit:     unit,
	}

	if err := ingredient.Validate(); err != nil {
		return nil, err
	}

	return ingredient, nil
}

// Validate checks if the Ingredient has valid data.
// Returns an error if any field fails validation.
func (i *Ingredient) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyIngredientID
	}

	if i.Name == "" {
		return ErrEmptyIngredientName
	}

	for _, a := range i.Allergens {
		if !isValidAllergenType(a) {
			return ErrInvalidAllergenType
		}
	}

	for _, d := range i.Dietary {
		if !isValidDietaryRestriction(d) {
			return ErrInvalidDietaryRestriction
		}
	}

	return nil
}
