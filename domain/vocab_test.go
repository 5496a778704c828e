package domain

import (
	"testing"
)

func TestParseIngredientType(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []string{
		"flower", "concentrate", "distillate", "isolate", "tincture",
		"butter", "oil", "rso", "kief", "hash", "rosin", "sauce",
	}

	for _, s := range valid {
		parsed, err := ParseIngredientType(s)
		if err != nil {
			t.Errorf("Expected %q to parse, got error %v", s, err)
		}
		if string(parsed) != s {
			t.Errorf("Expected round-trip of %q, got %q", s, string(parsed))
		}
	}

	if _, err := ParseIngredientType("edible"); err != ErrInvalidIngredientType {
		t.Errorf("Expected error %v, got %v", ErrInvalidIngredientType, err)
	}

	// Wire strings are exact lowercase values
	if _, err := ParseIngredientType("Flower"); err != ErrInvalidIngredientType {
		t.Errorf("Expected error %v, got %v", ErrInvalidIngredientType, err)
	}
}

func TestParseIngredientForm(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []string{"solid", "liquid", "powder", "paste", "crystal"}

	for _, s := range valid {
		parsed, err := ParseIngredientForm(s)
		if err != nil {
			t.Errorf("Expected %q to parse, got error %v", s, err)
		}
		if string(parsed) != s {
			t.Errorf("Expected round-trip of %q, got %q", s, string(parsed))
		}
	}

	if _, err := ParseIngredientForm("gas"); err != ErrInvalidIngredientForm {
		t.Errorf("Expected error %v, got %v", ErrInvalidIngredientForm, err)
	}
}

func TestParseDosageUnit(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []string{"mg_thc", "mg_cbd", "mg_total", "grams", "ml"}

	for _, s := range valid {
		parsed, err := ParseDosageUnit(s)
		if err != nil {
			t.Errorf("Expected %q to parse, got error %v", s, err)
		}
		if string(parsed) != s {
			t.Errorf("Expected round-trip of %q, got %q", s, string(parsed))
		}
	}

	if _, err := ParseDosageUnit("ounces"); err != ErrInvalidDosageUnit {
		t.Errorf("Expected error %v, got %v", ErrInvalidDosageUnit, err)
	}
}

func TestParseRecipeCategory(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []string{
		"appetizer", "main_course", "dessert", "beverage", "snack",
		"sauce", "baked_good", "confection", "savory",
	}

	for _, s := range valid {
		parsed, err := ParseRecipeCategory(s)
		if err != nil {
			t.Errorf("Expected %q to parse, got error %v", s, err)
		}
		if string(parsed) != s {
			t.Errorf("Expected round-trip of %q, got %q", s, string(parsed))
		}
	}

	if _, err := ParseRecipeCategory("breakfast"); err != ErrInvalidRecipeCategory {
		t.Errorf("Expected error %v, got %v", ErrInvalidRecipeCategory, err)
	}
}

func TestParseDietaryRestriction(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []string{
		"vegan", "vegetarian", "gluten_free", "dairy_free", "nut_free",
		"soy_free", "keto", "paleo", "low_sugar", "organic",
	}

	for _, s := range valid {
		parsed, err := ParseDietaryRestriction(s)
		if err != nil {
			t.Errorf("Expected %q to parse, got error %v", s, err)
		}
		if string(parsed) != s {
			t.Errorf("Expected round-trip of %q, got %q", s, string(parsed))
		}
	}

	if _, err := ParseDietaryRestriction("halal"); err != ErrInvalidDietaryRestriction {
		t.Errorf("Expected error %v, got %v", ErrInvalidDietaryRestriction, err)
	}
}

func TestParseAllergenType(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []string{
		"milk", "eggs", "fish", "shellfish", "tree_nuts",
		"peanuts", "wheat", "soy", "sesame",
	}

	for _, s := range valid {
		parsed, err := ParseAllergenType(s)
		if err != nil {
			t.Errorf("Expected %q to parse, got error %v", s, err)
		}
		if string(parsed) != s {
			t.Errorf("Expected round-trip of %q, got %q", s, string(parsed))
		}
	}

	if _, err := ParseAllergenType("gluten"); err != ErrInvalidAllergenType {
		t.Errorf("Expected error %v, got %v", ErrInvalidAllergenType, err)
	}
}

func TestParseComplianceStatus(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []string{"compliant", "pending_review", "non_compliant", "expired"}

	for _, s := range valid {
		parsed, err := ParseComplianceStatus(s)
		if err != nil {
			t.Errorf("Expected %q to parse, got error %v", s, err)
		}
		if string(parsed) != s {
			t.Errorf("Expected round-trip of %q, got %q", s, string(parsed))
		}
	}

	if _, err := ParseComplianceStatus("approved"); err != ErrInvalidComplianceStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidComplianceStatus, err)
	}
}
