package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults match the calculation packages' built-in parameters.
	v.SetDefault("dosage.high_dose_threshold_mg", 10.0)
	v.SetDefault("dosage.default_onset_time_minutes", 60)
	v.SetDefault("dosage.default_duration_hours", 6)
	v.SetDefault("pairing.limonene_threshold", 0.5)
	v.SetDefault("pairing.myrcene_threshold", 0.5)
	v.SetDefault("pairing.caryophyllene_threshold", 0.3)
	v.SetDefault("pairing.pinene_threshold", 0.3)
	v.SetDefault("pairing.linalool_threshold", 0.2)

	// Optional config file in the working directory.
	v.SetConfigName("infusion")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Environment variables with INFUSION_ prefix override file values,
	// e.g. INFUSION_DOSAGE_HIGH_DOSE_THRESHOLD_MG.
	v.SetEnvPrefix("INFUSION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
