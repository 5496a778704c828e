// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides
// type-safe access to the tunable calculation parameters (dosage warning
// threshold, pairing thresholds, guidance defaults) while keeping
// configuration details separate from the domain logic.
package config
