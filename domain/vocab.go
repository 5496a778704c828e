package domain

import "errors"

// Vocabulary errors, returned by the ParseX constructors and by entity
// validation when a field holds a value outside its closed set.
var (
	ErrInvalidIngredientType     = errors.New("invalid ingredient type")
	ErrInvalidIngredientForm     = errors.New("invalid ingredient form")
	ErrInvalidDosageUnit         = errors.New("invalid dosage unit")
	ErrInvalidRecipeCategory     = errors.New("invalid recipe category")
	ErrInvalidDietaryRestriction = errors.New("invalid dietary restriction")
	ErrInvalidAllergenType       = errors.New("invalid allergen type")
	ErrInvalidComplianceStatus   = errors.New("invalid compliance status")
)

// IngredientType classifies the cannabis source material an infused
// ingredient was produced from.
type IngredientType string

// Possible ingredient type values
const (
	IngredientTypeFlower      IngredientType = "flower"
	IngredientTypeConcentrate IngredientType = "concentrate"
	IngredientTypeDistillate  IngredientType = "distillate"
	IngredientTypeIsolate     IngredientType = "isolate"
	IngredientTypeTincture    IngredientType = "tincture"
	IngredientTypeButter      IngredientType = "butter"
	IngredientTypeOil         IngredientType = "oil"
	IngredientTypeRSO         IngredientType = "rso"
	IngredientTypeKief        IngredientType = "kief"
	IngredientTypeHash        IngredientType = "hash"
	IngredientTypeRosin       IngredientType = "rosin"
	IngredientTypeSauce       IngredientType = "sauce"
)

// ParseIngredientType converts a wire string into an IngredientType.
// Returns ErrInvalidIngredientType for unknown strings.
func ParseIngredientType(s string) (IngredientType, error) {
	t := IngredientType(s)
	if !isValidIngredientType(t) {
		return "", ErrInvalidIngredientType
	}
	return t, nil
}

// isValidIngredientType checks if the given type is a valid IngredientType.
func isValidIngredientType(t IngredientType) bool {
	switch t {
	case IngredientTypeFlower, IngredientTypeConcentrate, IngredientTypeDistillate,
		IngredientTypeIsolate, IngredientTypeTincture, IngredientTypeButter,
		IngredientTypeOil, IngredientTypeRSO, IngredientTypeKief,
		IngredientTypeHash, IngredientTypeRosin, IngredientTypeSauce:
		return true
	default:
		return false
	}
}

// IngredientForm describes the physical form of an ingredient.
type IngredientForm string

// Possible ingredient form values
const (
	IngredientFormSolid   IngredientForm = "solid"
	IngredientFormLiquid  IngredientForm = "liquid"
	IngredientFormPowder  IngredientForm = "powder"
	IngredientFormPaste   IngredientForm = "paste"
	IngredientFormCrystal IngredientForm = "crystal"
)

// ParseIngredientForm converts a wire string into an IngredientForm.
// Returns ErrInvalidIngredientForm for unknown strings.
func ParseIngredientForm(s string) (IngredientForm, error) {
	f := IngredientForm(s)
	if !isValidIngredientForm(f) {
		return "", ErrInvalidIngredientForm
	}
	return f, nil
}

// isValidIngredientForm checks if the given form is a valid IngredientForm.
func isValidIngredientForm(f IngredientForm) bool {
	switch f {
	case IngredientFormSolid, IngredientFormLiquid, IngredientFormPowder,
		IngredientFormPaste, IngredientFormCrystal:
		return true
	default:
		return false
	}
}

// DosageUnit identifies the unit a cannabis dosage figure is expressed in.
type DosageUnit string

// Possible dosage unit values
const (
	DosageUnitMgTHC   DosageUnit = "mg_thc"
	DosageUnitMgCBD   DosageUnit = "mg_cbd"
	DosageUnitMgTotal DosageUnit = "mg_total"
	DosageUnitGrams   DosageUnit = "grams"
	DosageUnitMl      DosageUnit = "ml"
)

// ParseDosageUnit converts a wire string into a DosageUnit.
// Returns ErrInvalidDosageUnit for unknown strings.
func ParseDosageUnit(s string) (DosageUnit, error) {
	u := DosageUnit(s)
	if !isValidDosageUnit(u) {
		return "", ErrInvalidDosageUnit
	}
	return u, nil
}

// isValidDosageUnit checks if the given unit is a valid DosageUnit.
func isValidDosageUnit(u DosageUnit) bool {
	switch u {
	case DosageUnitMgTHC, DosageUnitMgCBD, DosageUnitMgTotal,
		DosageUnitGrams, DosageUnitMl:
		return true
	default:
		return false
	}
}

// RecipeCategory classifies a recipe for menu grouping.
type RecipeCategory string

// Possible recipe category values
const (
	RecipeCategoryAppetizer  RecipeCategory = "appetizer"
	RecipeCategoryMainCourse RecipeCategory = "main_course"
	RecipeCategoryDessert    RecipeCategory = "dessert"
	RecipeCategoryBeverage   RecipeCategory = "beverage"
	RecipeCategorySnack      RecipeCategory = "snack"
	RecipeCategorySauce      RecipeCategory = "sauce"
	RecipeCategoryBakedGood  RecipeCategory = "baked_good"
	RecipeCategoryConfection RecipeCategory = "confection"
	RecipeCategorySavory     RecipeCategory = "savory"
)

// ParseRecipeCategory converts a wire string into a RecipeCategory.
// Returns ErrInvalidRecipeCategory for unknown strings.
func ParseRecipeCategory(s string) (RecipeCategory, error) {
	c := RecipeCategory(s)
	if !isValidRecipeCategory(c) {
		return "", ErrInvalidRecipeCategory
	}
	return c, nil
}

// isValidRecipeCategory checks if the given category is a valid RecipeCategory.
func isValidRecipeCategory(c RecipeCategory) bool {
	switch c {
	case RecipeCategoryAppetizer, RecipeCategoryMainCourse, RecipeCategoryDessert,
		RecipeCategoryBeverage, RecipeCategorySnack, RecipeCategorySauce,
		RecipeCategoryBakedGood, RecipeCategoryConfection, RecipeCategorySavory:
		return true
	default:
		return false
	}
}

// DietaryRestriction labels a recipe or ingredient for dietary filtering.
type DietaryRestriction string

// Possible dietary restriction values
const (
	DietaryRestrictionVegan      DietaryRestriction = "vegan"
	DietaryRestrictionVegetarian DietaryRestriction = "vegetarian"
	DietaryRestrictionGlutenFree DietaryRestriction = "gluten_free"
	DietaryRestrictionDairyFree  DietaryRestriction = "dairy_free"
	DietaryRestrictionNutFree    DietaryRestriction = "nut_free"
	DietaryRestrictionSoyFree    DietaryRestriction = "soy_free"
	DietaryRestrictionKeto       DietaryRestriction = "keto"
	DietaryRestrictionPaleo      DietaryRestriction = "paleo"
	DietaryRestrictionLowSugar   DietaryRestriction = "low_sugar"
	DietaryRestrictionOrganic    DietaryRestriction = "organic"
)

// ParseDietaryRestriction converts a wire string into a DietaryRestriction.
// Returns ErrInvalidDietaryRestriction for unknown strings.
func ParseDietaryRestriction(s string) (DietaryRestriction, error) {
	d := DietaryRestriction(s)
	if !isValidDietaryRestriction(d) {
		return "", ErrInvalidDietaryRestriction
	}
	return d, nil
}

// isValidDietaryRestriction checks if the given label is a valid DietaryRestriction.
func isValidDietaryRestriction(d DietaryRestriction) bool {
	switch d {
	case DietaryRestrictionVegan, DietaryRestrictionVegetarian,
		DietaryRestrictionGlutenFree, DietaryRestrictionDairyFree,
		DietaryRestrictionNutFree, DietaryRestrictionSoyFree,
		DietaryRestrictionKeto, DietaryRestrictionPaleo,
		DietaryRestrictionLowSugar, DietaryRestrictionOrganic:
		return true
	default:
		return false
	}
}

// AllergenType identifies a common food allergen.
type AllergenType string

// Possible allergen values
const (
	AllergenMilk      AllergenType = "milk"
	AllergenEggs      AllergenType = "eggs"
	AllergenFish      AllergenType = "fish"
	AllergenShellfish AllergenType = "shellfish"
	AllergenTreeNuts  AllergenType = "tree_nuts"
	AllergenPeanuts   AllergenType = "peanuts"
	AllergenWheat     AllergenType = "wheat"
	AllergenSoy       AllergenType = "soy"
	AllergenSesame    AllergenType = "sesame"
)

// ParseAllergenType converts a wire string into an AllergenType.
// Returns ErrInvalidAllergenType for unknown strings.
func ParseAllergenType(s string) (AllergenType, error) {
	a := AllergenType(s)
	if !isValidAllergenType(a) {
		return "", ErrInvalidAllergenType
	}
	return a, nil
}

// isValidAllergenType checks if the given allergen is a valid AllergenType.
func isValidAllergenType(a AllergenType) bool {
	switch a {
	case AllergenMilk, AllergenEggs, AllergenFish, AllergenShellfish,
		AllergenTreeNuts, AllergenPeanuts, AllergenWheat, AllergenSoy,
		AllergenSesame:
		return true
	default:
		return false
	}
}

// ComplianceStatus represents the food safety compliance state of a venue.
type ComplianceStatus string

// Possible compliance status values
const (
	ComplianceStatusCompliant     ComplianceStatus = "compliant"
	ComplianceStatusPendingReview ComplianceStatus = "pending_review"
	ComplianceStatusNonCompliant  ComplianceStatus = "non_compliant"
	ComplianceStatusExpired       ComplianceStatus = "expired"
)

// ParseComplianceStatus converts a wire string into a ComplianceStatus.
// Returns ErrInvalidComplianceStatus for unknown strings.
func ParseComplianceStatus(s string) (ComplianceStatus, error) {
	c := ComplianceStatus(s)
	if !isValidComplianceStatus(c) {
		return "", ErrInvalidComplianceStatus
	}
	return c, nil
}

// isValidComplianceStatus checks if the given status is a valid ComplianceStatus.
func isValidComplianceStatus(c ComplianceStatus) bool {
	switch c {
	case ComplianceStatusCompliant, ComplianceStatusPendingReview,
		ComplianceStatusNonCompliant, ComplianceStatusExpired:
		return true
	default:
		return false
	}
}
