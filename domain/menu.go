package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Menu-specific validation errors
var (
	// ErrEmptyMenuID is returned when a menu ID is empty or nil.
	ErrEmptyMenuID = errors.New("menu ID cannot be empty")

	// ErrEmptyMenuName is returned when a menu name is empty.
	ErrEmptyMenuName = errors.New("menu name cannot be empty")

	// ErrEmptyMenuItemID is returned when a menu item ID is empty or nil.
	ErrEmptyMenuItemID = errors.New("menu item ID cannot be empty")

	// ErrEmptyMenuItemName is returned when a menu item name is empty.
	ErrEmptyMenuItemName = errors.New("menu item name cannot be empty")

	// ErrEmptyMenuItemRecipeID is returned when a menu item references no recipe.
	ErrEmptyMenuItemRecipeID = errors.New("menu item recipe ID cannot be empty")

	// ErrNegativePrice is returned when a menu item price is negative.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidAvailabilityWindow is returned when a menu item's
	// availability window ends before it starts.
	ErrInvalidAvailabilityWindow = errors.New("available_from must not be after available_until")

	// ErrInvalidValidityWindow is returned when a menu's validity window
	// ends before it starts.
	ErrInvalidValidityWindow = errors.New("valid_from must not be after valid_until")

	// ErrInvalidAgeRequirement is returned when a menu's age requirement is
	// not positive.
	ErrInvalidAgeRequirement = errors.New("age requirement must be positive")
)

// MenuItem presents one recipe on a menu. The recipe reference is weak: the
// recipe may be deleted independently, so only its id is carried along with
// denormalized dosage display values.
type MenuItem struct {
	ID          uuid.UUID       `json:"id"`
	RecipeID    uuid.UUID       `json:"recipe_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`

	// Denormalized dosage display, populated from the recipe's DosageInfo.
	THCMg         decimal.Decimal `json:"thc_mg"`
	CBDMg         decimal.Decimal `json:"cbd_mg"`
	DosageDisplay string          `json:"dosage_display,omitempty"`

	IsAvailable       bool       `json:"is_available"`
	AvailableFrom     *time.Time `json:"available_from,omitempty"`
	AvailableUntil    *time.Time `json:"available_until,omitempty"`
	QuantityAvailable *int       `json:"quantity_available,omitempty"`

	ImageURL      string               `json:"image_url,omitempty"`
	DietaryLabels []DietaryRestriction `json:"dietary_labels,omitempty"`
	Featured      bool                 `json:"featured"`
}

// NewMenuItem creates a menu item referencing the given recipe.
// The provider supplies the generated id; pass nil to use the system
// provider. Returns an error if validation fails.
func NewMenuItem(p Provider, recipeID uuid.UUID, name string, price decimal.Decimal) (*MenuItem, error) {
	item := &MenuItem{
		ID:          orSystem(p).NewID(),
		RecipeID:    recipeID,
		Name:        name,
		Price:       price,
		IsAvailable: true,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the MenuItem has valid data.
// Returns an error if any field fails validation.
func (mi *MenuItem) Validate() error {
	if mi.ID == uuid.Nil {
		return ErrEmptyMenuItemID
	}

	if mi.RecipeID == uuid.Nil {
		return ErrEmptyMenuItemRecipeID
	}

	if mi.Name == "" {
		return ErrEmptyMenuItemName
	}

	if mi.Price.IsNegative() {
		return ErrNegativePrice
	}

	if mi.AvailableFrom != nil && mi.AvailableUntil != nil &&
		mi.AvailableFrom.After(*mi.AvailableUntil) {
		return ErrInvalidAvailabilityWindow
	}

	for _, d := range mi.DietaryLabels {
		if !isValidDietaryRestriction(d) {
			return ErrInvalidDietaryRestriction
		}
	}

	return nil
}

// ApplyDosage populates the item's denormalized dosage fields from a
// recipe's dosage snapshot.
func (mi *MenuItem) ApplyDosage(info DosageInfo) {
	mi.THCMg = info.THCMgPerServing
	mi.CBDMg = info.CBDMgPerServing
	mi.DosageDisplay = FormatDosageDisplay(info)
}

// FormatDosageDisplay builds the canonical menu dosage string, e.g.
// "10mg THC | 5mg CBD". Values are rendered as stored; callers round the
// snapshot before display if needed.
func FormatDosageDisplay(info DosageInfo) string {
	return fmt.Sprintf("%smg THC | %smg CBD",
		info.THCMgPerServing.String(), info.CBDMgPerServing.String())
}

// Menu is an ordered collection of menu items with venue and legal
// metadata.
type Menu struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Items       []MenuItem `json:"items"`

	VenueName    string `json:"venue_name,omitempty"`
	VenueLicense string `json:"venue_license,omitempty"`

	MenuType string `json:"menu_type"`

	Disclaimers    []string `json:"disclaimers,omitempty"`
	AgeRequirement int      `json:"age_requirement"`

	IsActive   bool       `json:"is_active"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewMenu creates an active menu with the given name, a standard menu type,
// and the default age requirement of 21. The provider supplies the
// generated id and creation timestamp; pass nil to use the system provider.
// Returns an error if validation fails.
func NewMenu(p Provider, name string) (*Menu, error) {
	p = orSystem(p)
	menu := &Menu{
		ID:             p.NewID(),
		Name:           name,
		MenuType:       "standard",
		AgeRequirement: 21,
		IsActive:       true,
		CreatedAt:      p.Now(),
	}

	if err := menu.Validate(); err != nil {
		return nil, err
	}

	return menu, nil
}

// Validate checks if the Menu has valid data.
// Returns an error if any field fails validation.
func (m *Menu) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMenuID
	}

	if m.Name == "" {
		return ErrEmptyMenuName
	}

	if m.AgeRequirement <= 0 {
		return ErrInvalidAgeRequirement
	}

	if m.ValidFrom != nil && m.ValidUntil != nil && m.ValidFrom.After(*m.ValidUntil) {
		return ErrInvalidValidityWindow
	}

	for i := range m.Items {
		if err := m.Items[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// AddItem appends a menu item. Returns an error if the item is invalid.
func (m *Menu) AddItem(item MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	m.Items = append(m.Items, item)
	return nil
}
