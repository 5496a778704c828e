package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewMenuItem(t *testing.T) {
	t.Parallel() // Enable parallel execution
	recipeID := uuid.New()

	item, err := NewMenuItem(nil, recipeID, "Lemon Bar", decimal.RequireFromString("12.50"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if item.RecipeID != recipeID {
		t.Errorf("Expected recipe ID %s, got %s", recipeID, item.RecipeID)
	}

	if !item.IsAvailable {
		t.Error("Expected new menu item to be available")
	}

	// Test nil recipe reference
	_, err = NewMenuItem(nil, uuid.Nil, "Lemon Bar", decimal.Zero)
	if err != ErrEmptyMenuItemRecipeID {
		t.Errorf("Expected error %v, got %v", ErrEmptyMenuItemRecipeID, err)
	}

	// Test empty name
	_, err = NewMenuItem(nil, recipeID, "", decimal.Zero)
	if err != ErrEmptyMenuItemName {
		t.Errorf("Expected error %v, got %v", ErrEmptyMenuItemName, err)
	}

	// Test negative price
	_, err = NewMenuItem(nil, recipeID, "Lemon Bar", decimal.RequireFromString("-1"))
	if err != ErrNegativePrice {
		t.Errorf("Expected error %v, got %v", ErrNegativePrice, err)
	}
}

func TestMenuItemAvailabilityWindow(t *testing.T) {
	t.Parallel() // Enable parallel execution
	item, err := NewMenuItem(nil, uuid.New(), "Lemon Bar", decimal.Zero)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 1, 0)

	item.AvailableFrom = &from
	item.AvailableUntil = &until
	if err := item.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Inverted window is rejected
	item.AvailableFrom = &until
	item.AvailableUntil = &from
	if err := item.Validate(); err != ErrInvalidAvailabilityWindow {
		t.Errorf("Expected error %v, got %v", ErrInvalidAvailabilityWindow, err)
	}

	// An open-ended window is fine
	item.AvailableUntil = nil
	if err := item.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestFormatDosageDisplay(t *testing.T) {
	t.Parallel() // Enable parallel execution
	info := DosageInfo{
		THCMgPerServing: decimal.NewFromInt(10),
		CBDMgPerServing: decimal.NewFromInt(5),
	}

	display := FormatDosageDisplay(info)
	if display != "10mg THC | 5mg CBD" {
		t.Errorf("Expected display \"10mg THC | 5mg CBD\", got %q", display)
	}
}

func TestMenuItemApplyDosage(t *testing.T) {
	t.Parallel() // Enable parallel execution
	item, err := NewMenuItem(nil, uuid.New(), "Lemon Bar", decimal.Zero)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info := DosageInfo{
		THCMgPerServing: decimal.RequireFromString("7.5"),
		CBDMgPerServing: decimal.RequireFromString("1.5"),
	}

	item.ApplyDosage(info)

	if !item.THCMg.Equal(info.THCMgPerServing) {
		t.Errorf("Expected THC display value %s, got %s", info.THCMgPerServing, item.THCMg)
	}

	if item.DosageDisplay != "7.5mg THC | 1.5mg CBD" {
		t.Errorf("Expected display \"7.5mg THC | 1.5mg CBD\", got %q", item.DosageDisplay)
	}
}

func TestNewMenu(t *testing.T) {
	t.Parallel() // Enable parallel execution
	menu, err := NewMenu(nil, "Spring Tasting Menu")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if menu.AgeRequirement != 21 {
		t.Errorf("Expected default age requirement 21, got %d", menu.AgeRequirement)
	}

	if menu.MenuType != "standard" {
		t.Errorf("Expected menu type standard, got %s", menu.MenuType)
	}

	if !menu.IsActive {
		t.Error("Expected new menu to be active")
	}

	// Test empty name
	_, err = NewMenu(nil, "")
	if err != ErrEmptyMenuName {
		t.Errorf("Expected error %v, got %v", ErrEmptyMenuName, err)
	}
}

func TestMenuValidityWindow(t *testing.T) {
	t.Parallel() // Enable parallel execution
	menu, err := NewMenu(nil, "Spring Tasting Menu")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	from := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 3, 0)

	menu.ValidFrom = &until
	menu.ValidUntil = &from
	if err := menu.Validate(); err != ErrInvalidValidityWindow {
		t.Errorf("Expected error %v, got %v", ErrInvalidValidityWindow, err)
	}
}

func TestMenuAddItem(t *testing.T) {
	t.Parallel() // Enable parallel execution
	menu, err := NewMenu(nil, "Spring Tasting Menu")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	item, err := NewMenuItem(nil, uuid.New(), "Lemon Bar", decimal.RequireFromString("12.50"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := menu.AddItem(*item); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(menu.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(menu.Items))
	}

	// Invalid items are rejected
	bad := *item
	bad.RecipeID = uuid.Nil
	if err := menu.AddItem(bad); err != ErrEmptyMenuItemRecipeID {
		t.Errorf("Expected error %v, got %v", ErrEmptyMenuItemRecipeID, err)
	}

	if len(menu.Items) != 1 {
		t.Error("Expected rejected item not to be appended")
	}
}
