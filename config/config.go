package config

import (
	"github.com/shopspring/decimal"

	"github.com/verdantlabs/infusion-core/domain/dosage"
	"github.com/verdantlabs/infusion-core/domain/pairing"
)

// Config holds all tunable calculation parameters.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Dosage  DosageConfig  `mapstructure:"dosage" validate:"required"`
	Pairing PairingConfig `mapstructure:"pairing" validate:"required"`
}

// DosageConfig contains the dosage calculation settings.
type DosageConfig struct {
	HighDoseThresholdMg     float64 `mapstructure:"high_dose_threshold_mg" validate:"required,gt=0"`
	DefaultOnsetTimeMinutes int     `mapstructure:"default_onset_time_minutes" validate:"required,gt=0"`
	DefaultDurationHours    int     `mapstructure:"default_duration_hours" validate:"required,gt=0"`
}

// PairingConfig contains the terpene pairing thresholds. Concentrations are
// percentages; a rule fires strictly above its threshold.
type PairingConfig struct {
	LimoneneThreshold      float64 `mapstructure:"limonene_threshold" validate:"gte=0"`
	MyrceneThreshold       float64 `mapstructure:"myrcene_threshold" validate:"gte=0"`
	CaryophylleneThreshold float64 `mapstructure:"caryophyllene_threshold" validate:"gte=0"`
	PineneThreshold        float64 `mapstructure:"pinene_threshold" validate:"gte=0"`
	LinaloolThreshold      float64 `mapstructure:"linalool_threshold" validate:"gte=0"`
}

// Params converts the dosage settings into calculation parameters.
func (c DosageConfig) Params() *dosage.Params {
	return dosage.NewParams(dosage.ParamsConfig{
		HighDoseThresholdMg:     decimal.NewFromFloat(c.HighDoseThresholdMg),
		DefaultOnsetTimeMinutes: c.DefaultOnsetTimeMinutes,
		DefaultDurationHours:    c.DefaultDurationHours,
	})
}

// Rules converts the pairing thresholds into a rule table: the default
// suggestions with the configured thresholds applied, in the default rule
// order.
func (c PairingConfig) Rules() []pairing.Rule {
	thresholds := map[pairing.Terpene]float64{
		pairing.TerpeneLimonene:      c.LimoneneThreshold,
		pairing.TerpeneMyrcene:       c.MyrceneThreshold,
		pairing.TerpeneCaryophyllene: c.CaryophylleneThreshold,
		pairing.TerpenePinene:        c.PineneThreshold,
		pairing.TerpeneLinalool:      c.LinaloolThreshold,
	}

	rules := pairing.DefaultRules()
	for i := range rules {
		if t, ok := thresholds[rules[i].Terpene]; ok && t > 0 {
			rules[i].Threshold = decimal.NewFromFloat(t)
		}
	}

	return rules
}
