// Package model defines the rental-domain entities and their validated
// setters. Every Set method runs the matching rule from internal/validate
// before committing the value, so a rejected assignment leaves the entity
// untouched. Cross-field invariants run in each entity's Validate method,
// letting callers stage a full set of fields and check them atomically
// before persisting.
package model

import (
	"github.com/teresa-solution/rental-management-service/internal/credential"
	"github.com/teresa-solution/rental-management-service/internal/validate"
)

// Landlord represents the landlords table. The password is write-only:
// there is no getter, only SetPassword and CheckPassword. PasswordHash is
// excluded from JSON and from every projection.
type Landlord struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`

	// Loaded relations. Tenants and RentalBuildings are owned (cascade
	// delete); PropertyTypes is the many-to-many association.
	Tenants         []Tenant         `json:"tenants,omitempty"`
	RentalBuildings []RentalBuilding `json:"rental_buildings,omitempty"`
	PropertyTypes   []PropertyType   `json:"property_types,omitempty"`
}

// SetUsername validates and assigns the username.
func (l *Landlord) SetUsername(username string) error {
	if err := validate.Username(username); err != nil {
		return err
	}
	l.Username = username
	return nil
}

// SetPassword runs the strength rule and stores only the bcrypt hash.
func (l *Landlord) SetPassword(password string) error {
	if err := validate.Password(password); err != nil {
		return err
	}
	hash, err := credential.Hash(password)
	if err != nil {
		return err
	}
	l.PasswordHash = hash
	return nil
}

// CheckPassword reports whether the candidate matches the stored hash.
func (l *Landlord) CheckPassword(candidate string) bool {
	return credential.Verify(candidate, l.PasswordHash)
}

// Validate re-checks all staged fields before persisting.
func (l *Landlord) Validate() error {
	if err := validate.Username(l.Username); err != nil {
		return err
	}
	if l.PasswordHash == "" {
		return validate.Errorf("password", "password is required")
	}
	return nil
}
