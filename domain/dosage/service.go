package dosage

import (
	"errors"

	"github.com/verdantlabs/infusion-core/domain"
)

// Common errors
var (
	ErrNilRecipe     = errors.New("recipe cannot be nil")
	ErrNilDosageInfo = errors.New("dosage info cannot be nil")
)

// Service defines the interface for dosage calculation operations
type Service interface {
	// CalculateTotalDosage derives a fresh dosage snapshot from a recipe's
	// cannabis line items and servings count. The recipe's embedded
	// snapshot is not touched; callers decide whether to install the
	// result with Recipe.SetDosageInfo.
	CalculateTotalDosage(recipe *domain.Recipe) (*domain.DosageInfo, error)

	// PerServing extracts the per-serving THC and CBD amounts from an
	// existing snapshot, with the same zero-servings fallback as
	// CalculateTotalDosage.
	PerServing(info *domain.DosageInfo) (domain.PerServingDose, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new dosage service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new dosage service with custom parameters
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// CalculateTotalDosage implements the Service interface for computing a
// recipe's dosage snapshot
func (s *defaultService) CalculateTotalDosage(recipe *domain.Recipe) (*domain.DosageInfo, error) {
	if recipe == nil {
		return nil, ErrNilRecipe
	}

	if recipe.Servings < 0 {
		return nil, domain.ErrNegativeServings
	}

	totalTHC, totalCBD := sumIngredientDoses(recipe.CannabisIngredients)
	info := buildDosageInfo(totalTHC, totalCBD, recipe.Servings, s.params)

	return &info, nil
}

// PerServing implements the Service interface for per-serving extraction
func (s *defaultService) PerServing(info *domain.DosageInfo) (domain.PerServingDose, error) {
	if info == nil {
		return domain.PerServingDose{}, ErrNilDosageInfo
	}

	return info.CalculatePerServing(), nil
}
