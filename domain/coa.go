package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// COA-specific validation errors
var (
	// ErrEmptyCOAID is returned when a COA reference has no certificate identifier.
	ErrEmptyCOAID = errors.New("COA ID cannot be empty")

	// ErrEmptyBatchNumber is returned when a COA reference has no batch number.
	ErrEmptyBatchNumber = errors.New("COA batch number cannot be empty")

	// ErrNegativePercentage is returned when a COA potency percentage is negative.
	ErrNegativePercentage = errors.New("potency percentage cannot be negative")

	// ErrNegativeConcentration is returned when a terpene concentration is negative.
	ErrNegativeConcentration = errors.New("terpene concentration cannot be negative")
)

// CannabisCOAReference identifies one Certificate of Analysis issued by a
// third-party lab for a cannabis batch. It is a value type: once issued by
// the lab it never changes, and each owner (ingredient or lot) holds its
// own copy.
type CannabisCOAReference struct {
	COAID       string `json:"coa_id"`
	BatchNumber string `json:"batch_number"`
	StrainName  string `json:"strain_name"`
	LabName     string `json:"lab_name,omitempty"`
	COAURL      string `json:"coa_url,omitempty"`

	TestDate       *time.Time `json:"test_date,omitempty"`
	HarvestDate    *time.Time `json:"harvest_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`

	// Key potency data from the certificate, as percentages of mass.
	THCPercentage     decimal.Decimal `json:"thc_percentage"`
	CBDPercentage     decimal.Decimal `json:"cbd_percentage"`
	TotalCannabinoids decimal.Decimal `json:"total_cannabinoids"`

	// Safety testing results.
	PassedMicrobial        bool `json:"passed_microbial"`
	PassedPesticides       bool `json:"passed_pesticides"`
	PassedHeavyMetals      bool `json:"passed_heavy_metals"`
	PassedResidualSolvents bool `json:"passed_residual_solvents"`
}

// NewCannabisCOAReference creates a COA reference for the given certificate,
// batch, and strain with all safety tests marked passed and zero potency.
// Callers fill in potency and dates from the lab data before use.
// Returns an error if validation fails.
func NewCannabisCOAReference(coaID, batchNumber, strainName string) (*CannabisCOAReference, error) {
	ref := &CannabisCOAReference{
		COAID:                  coaID,
		BatchNumber:            batchNumber,
		StrainName:             strainName,
		THCPercentage:          decimal.Zero,
		CBDPercentage:          decimal.Zero,
		TotalCannabinoids:      decimal.Zero,
		PassedMicrobial:        true,
		PassedPesticides:       true,
		PassedHeavyMetals:      true,
		PassedResidualSolvents: true,
	}

	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return ref, nil
}

// Validate checks if the CannabisCOAReference has valid data.
// Returns an error if any field fails validation.
func (r *CannabisCOAReference) Validate() error {
	if r.COAID == "" {
		return ErrEmptyCOAID
	}

	if r.BatchNumber == "" {
		return ErrEmptyBatchNumber
	}

	if r.THCPercentage.IsNegative() || r.CBDPercentage.IsNegative() ||
		r.TotalCannabinoids.IsNegative() {
		return ErrNegativePercentage
	}

	return nil
}

// PassedAllSafetyTests reports whether every safety panel on the
// certificate passed.
func (r *CannabisCOAReference) PassedAllSafetyTests() bool {
	return r.PassedMicrobial && r.PassedPesticides &&
		r.PassedHeavyMetals && r.PassedResidualSolvents
}

// TerpeneProfile holds the terpene panel from a COA, used for culinary
// flavor pairing. Concentrations are percentages of mass. Pairing
// suggestions are derived on demand by the pairing package and are never
// cached here, since concentrations may be corrected after construction.
type TerpeneProfile struct {
	COAReference CannabisCOAReference `json:"coa_reference"`

	// Primary terpene concentrations.
	Myrcene       decimal.Decimal `json:"myrcene"`
	Limonene      decimal.Decimal `json:"limonene"`
	Caryophyllene decimal.Decimal `json:"caryophyllene"`
	Pinene        decimal.Decimal `json:"pinene"`
	Linalool      decimal.Decimal `json:"linalool"`
	Humulene      decimal.Decimal `json:"humulene"`
	Terpinolene   decimal.Decimal `json:"terpinolene"`
	Ocimene       decimal.Decimal `json:"ocimene"`

	// Flavor notes supplied by the lab-data collaborator.
	PrimaryFlavors []string `json:"primary_flavors,omitempty"`
	AromaNotes     []string `json:"aroma_notes,omitempty"`

	// Culinary notes supplied by the culinary collaborator.
	PairsWellWith []string `json:"pairs_well_with,omitempty"`
	CuisineTypes  []string `json:"cuisine_types,omitempty"`
}

// NewTerpeneProfile creates a TerpeneProfile attached to the given COA
// reference with all concentrations zero.
// Returns an error if validation fails.
func NewTerpeneProfile(ref CannabisCOAReference) (*TerpeneProfile, error) {
	profile := &TerpeneProfile{
		COAReference:  ref,
		Myrcene:       decimal.Zero,
		Limonene:      decimal.Zero,
		Caryophyllene: decimal.Zero,
		Pinene:        decimal.Zero,
		Linalool:      decimal.Zero,
		Humulene:      decimal.Zero,
		Terpinolene:   decimal.Zero,
		Ocimene:       decimal.Zero,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the TerpeneProfile has valid data.
// Returns an error if any field fails validation.
func (p *TerpeneProfile) Validate() error {
	if err := p.COAReference.Validate(); err != nil {
		return err
	}

	for _, c := range []decimal.Decimal{
		p.Myrcene, p.Limonene, p.Caryophyllene, p.Pinene,
		p.Linalool, p.Humulene, p.Terpinolene, p.Ocimene,
	} {
		if c.IsNegative() {
			return ErrNegativeConcentration
		}
	}

	return nil
}
