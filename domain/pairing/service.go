package pairing

import (
	"errors"

	"github.com/verdantlabs/infusion-core/domain"
)

// Common errors
var (
	ErrNilProfile = errors.New("terpene profile cannot be nil")
)

// Service defines the interface for pairing suggestion operations
type Service interface {
	// SuggestPairings produces the ordered pairing suggestions for a
	// terpene profile's current concentrations. The result is empty when
	// no rule fires.
	SuggestPairings(profile *domain.TerpeneProfile) ([]string, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	rules []Rule
}

// NewDefaultService creates a new pairing service with the default rule table
func NewDefaultService() Service {
	return &defaultService{
		rules: DefaultRules(),
	}
}

// NewServiceWithRules creates a new pairing service with a custom rule table.
// Rules are evaluated in the order given.
func NewServiceWithRules(rules []Rule) Service {
	return &defaultService{
		rules: rules,
	}
}

// SuggestPairings implements the Service interface
func (s *defaultService) SuggestPairings(profile *domain.TerpeneProfile) ([]string, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}

	return suggestPairings(profile, s.rules), nil
}
