package domain

import (
	"time"

	"github.com/google/uuid"
)

// Provider supplies entity identity and timestamps at construction and
// mutation time. Production code passes nil to use the system provider;
// tests inject a deterministic implementation.
type Provider interface {
	// NewID generates a process-wide-unique entity identifier.
	NewID() uuid.UUID

	// Now returns the current time in UTC.
	Now() time.Time
}

// systemProvider is the production Provider backed by uuid.New and the
// system clock.
type systemProvider struct{}

func (systemProvider) NewID() uuid.UUID { return uuid.New() }

func (systemProvider) Now() time.Time { return time.Now().UTC() }

// SystemProvider returns the default identity/clock provider.
func SystemProvider() Provider { return systemProvider{} }

// orSystem substitutes the system provider for a nil one.
func orSystem(p Provider) Provider {
	if p == nil {
		return systemProvider{}
	}
	return p
}
