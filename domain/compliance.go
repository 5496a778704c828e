package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compliance-specific validation errors
var (
	// ErrEmptyRecordID is returned when a compliance record ID is empty or nil.
	ErrEmptyRecordID = errors.New("record ID cannot be empty")

	// ErrEmptyVenueID is returned when a food safety record has no venue.
	ErrEmptyVenueID = errors.New("venue ID cannot be empty")

	// ErrEmptyCorrectiveAction is returned when appending an empty
	// corrective action.
	ErrEmptyCorrectiveAction = errors.New("corrective action cannot be empty")

	// ErrEmptyViolation is returned when recording an empty violation.
	ErrEmptyViolation = errors.New("violation cannot be empty")

	// ErrEmptyLotNumber is returned when a lot has no lot number.
	ErrEmptyLotNumber = errors.New("lot number cannot be empty")

	// ErrEmptyLotIngredientID is returned when a lot references no cannabis
	// ingredient.
	ErrEmptyLotIngredientID = errors.New("lot cannabis ingredient ID cannot be empty")

	// ErrLotOverdraw is returned when a recorded usage exceeds the lot's
	// remaining quantity.
	ErrLotOverdraw = errors.New("usage exceeds remaining lot quantity")
)

// FoodSafetyRecord is an inspection snapshot for a venue. It is created per
// inspection event and never mutated afterwards, except for appending
// violations and corrective actions as they are filed.
type FoodSafetyRecord struct {
	ID             uuid.UUID        `json:"id"`
	VenueID        string           `json:"venue_id"`
	InspectionDate time.Time        `json:"inspection_date"`
	InspectorName  string           `json:"inspector_name,omitempty"`
	Score          *int             `json:"score,omitempty"`
	Status         ComplianceStatus `json:"status"`

	// Cannabis-specific compliance checks.
	CannabisLicenseVerified bool `json:"cannabis_license_verified"`
	DosageLabelingCompliant bool `json:"dosage_labeling_compliant"`
	COARecordsAvailable     bool `json:"coa_records_available"`
	StaffTrainingCurrent    bool `json:"staff_training_current"`

	Notes              string     `json:"notes,omitempty"`
	NextInspectionDate *time.Time `json:"next_inspection_date,omitempty"`

	Violations        []string `json:"violations,omitempty"`
	CorrectiveActions []string `json:"corrective_actions,omitempty"`
}

// NewFoodSafetyRecord creates an inspection record for the given venue and
// date. The provider supplies the generated id; pass nil to use the system
// provider. Returns an error if validation fails.
func NewFoodSafetyRecord(
	p Provider,
	venueID string,
	inspectionDate time.Time,
	status ComplianceStatus,
) (*FoodSafetyRecord, error) {
	record := &FoodSafetyRecord{
		ID:             orSystem(p).NewID(),
		VenueID:        venueID,
		InspectionDate: inspectionDate,
		Status:         status,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the FoodSafetyRecord has valid data.
// Returns an error if any field fails validation.
func (r *FoodSafetyRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRecordID
	}

	if r.VenueID == "" {
		return ErrEmptyVenueID
	}

	if !isValidComplianceStatus(r.Status) {
		return ErrInvalidComplianceStatus
	}

	return nil
}

// RecordViolation appends a violation to the record.
// Returns ErrEmptyViolation for an empty string.
func (r *FoodSafetyRecord) RecordViolation(violation string) error {
	if violation == "" {
		return ErrEmptyViolation
	}

	r.Violations = append(r.Violations, violation)
	return nil
}

// AppendCorrectiveAction appends a corrective action to the record.
// Returns ErrEmptyCorrectiveAction for an empty string.
func (r *FoodSafetyRecord) AppendCorrectiveAction(action string) error {
	if action == "" {
		return ErrEmptyCorrectiveAction
	}

	r.CorrectiveActions = append(r.CorrectiveActions, action)
	return nil
}

// LotTracking tracks consumption of one cannabis-ingredient lot across
// recipes, from receipt through disposal. The depletion invariant
// CurrentQuantity == ReceivedQuantity - TotalUsed holds after every
// recorded usage. Quarantine gating is the inventory collaborator's
// responsibility; this entity only stores the flag.
type LotTracking struct {
	ID                   uuid.UUID `json:"id"`
	CannabisIngredientID uuid.UUID `json:"cannabis_ingredient_id"`
	LotNumber            string    `json:"lot_number"`

	COAReference *CannabisCOAReference `json:"coa_reference,omitempty"`

	ReceivedDate     time.Time       `json:"received_date"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	CurrentQuantity  decimal.Decimal `json:"current_quantity"`
	Unit             string          `json:"unit"`

	RecipesUsedIn []uuid.UUID     `json:"recipes_used_in,omitempty"`
	TotalUsed     decimal.Decimal `json:"total_used"`

	IsActive         bool       `json:"is_active"`
	Quarantined      bool       `json:"quarantined"`
	QuarantineReason string     `json:"quarantine_reason,omitempty"`
	ExpirationDate   *time.Time `json:"expiration_date,omitempty"`
	DisposedDate     *time.Time `json:"disposed_date,omitempty"`
	DisposalReason   string     `json:"disposal_reason,omitempty"`
}

// NewLotTracking creates an active, full lot for the given cannabis
// ingredient, measured in grams. The provider supplies the generated id and
// received date; pass nil to use the system provider. Returns an error if
// validation fails.
func NewLotTracking(
	p Provider,
	cannabisIngredientID uuid.UUID,
	lotNumber string,
	receivedQuantity decimal.Decimal,
) (*LotTracking, error) {
	p = orSystem(p)
	lot := &LotTracking{
		ID:                   p.NewID(),
		CannabisIngredientID: cannabisIngredientID,
		LotNumber:            lotNumber,
		ReceivedDate:         p.Now(),
		ReceivedQuantity:     receivedQuantity,
		CurrentQuantity:      receivedQuantity,
		Unit:                 "grams",
		TotalUsed:            decimal.Zero,
		IsActive:             true,
	}

	if err := lot.Validate(); err != nil {
		return nil, err
	}

	return lot, nil
}

// Validate checks if the LotTracking has valid data, including the
// depletion invariant.
// Returns an error if any field fails validation.
func (l *LotTracking) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyRecordID
	}

	if l.CannabisIngredientID == uuid.Nil {
		return ErrEmptyLotIngredientID
	}

	if l.LotNumber == "" {
		return ErrEmptyLotNumber
	}

	if l.ReceivedQuantity.IsNegative() || l.TotalUsed.IsNegative() {
		return ErrNegativeQuantity
	}

	if !l.CurrentQuantity.Equal(l.ReceivedQuantity.Sub(l.TotalUsed)) {
		return ErrLotOverdraw
	}

	if l.COAReference != nil {
		if err := l.COAReference.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// RecordUsage records consumption of the lot by a recipe, maintaining the
// depletion invariant. Returns ErrNegativeQuantity for a negative draw and
// ErrLotOverdraw when the draw exceeds the remaining quantity. Quarantine
// status is not checked here.
func (l *LotTracking) RecordUsage(recipeID uuid.UUID, quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return ErrNegativeQuantity
	}

	if quantity.GreaterThan(l.CurrentQuantity) {
		return ErrLotOverdraw
	}

	l.TotalUsed = l.TotalUsed.Add(quantity)
	l.CurrentQuantity = l.ReceivedQuantity.Sub(l.TotalUsed)
	l.RecipesUsedIn = append(l.RecipesUsedIn, recipeID)
	return nil
}

// Quarantine marks the lot quarantined with the given reason. Further usage
// must be blocked by the inventory collaborator.
func (l *LotTracking) Quarantine(reason string) {
	l.Quarantined = true
	l.QuarantineReason = reason
}

// Dispose deactivates the lot and records when and why it was disposed.
func (l *LotTracking) Dispose(when time.Time, reason string) {
	l.IsActive = false
	l.DisposedDate = &when
	l.DisposalReason = reason
}
