// Package dosage computes cannabinoid dosage snapshots for recipes from
// per-gram ingredient potency, using exact decimal arithmetic throughout.
package dosage

import (
	"github.com/shopspring/decimal"
)

// Params defines all configurable parameters for dosage calculation.
type Params struct {
	// HighDoseThresholdMg is the per-serving THC level above which the
	// high-dose warning is raised. The warning fires strictly above the
	// threshold, never at it.
	HighDoseThresholdMg decimal.Decimal

	// Guidance defaults stamped onto every computed snapshot.
	DefaultOnsetTimeMinutes int
	DefaultDurationHours    int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero-valued fields keep their defaults.
type ParamsConfig struct {
	HighDoseThresholdMg     decimal.Decimal
	DefaultOnsetTimeMinutes int
	DefaultDurationHours    int
}

// NewDefaultParams creates a new Params instance with default values:
// a 10 mg THC per-serving warning threshold and typical edible guidance
// (onset 60 minutes, duration 6 hours).
func NewDefaultParams() *Params {
	return &Params{
		HighDoseThresholdMg:     decimal.NewFromInt(10),
		DefaultOnsetTimeMinutes: 60,
		DefaultDurationHours:    6,
	}
}

// NewParams creates a Params instance from the given config, falling back
// to defaults for zero-valued fields.
func NewParams(cfg ParamsConfig) *Params {
	params := NewDefaultParams()

	if cfg.HighDoseThresholdMg.IsPositive() {
		params.HighDoseThresholdMg = cfg.HighDoseThresholdMg
	}
	if cfg.DefaultOnsetTimeMinutes > 0 {
		params.DefaultOnsetTimeMinutes = cfg.DefaultOnsetTimeMinutes
	}
	if cfg.DefaultDurationHours > 0 {
		params.DefaultDurationHours = cfg.DefaultDurationHours
	}

	return params
}
