package model

import "github.com/teresa-solution/rental-management-service/internal/validate"

// Tenant represents the tenants table. LandlordID is a nullable back
// reference to the owning landlord; the buildings slice is non-owning, so
// deleting a tenant never deletes its buildings.
type Tenant struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Telephone  string `json:"telephone"`
	Occupation string `json:"occupation"`
	LandlordID *int64 `json:"landlord_id,omitempty"`

	RentalBuildings []RentalBuilding `json:"rental_buildings,omitempty"`
}

// SetFirstName validates and assigns the first name.
func (t *Tenant) SetFirstName(v string) error {
	if err := validate.FirstName(v); err != nil {
		return err
	}
	t.FirstName = v
	return nil
}

// SetLastName validates and assigns the last name.
func (t *Tenant) SetLastName(v string) error {
	if err := validate.LastName(v); err != nil {
		return err
	}
	t.LastName = v
	return nil
}

// SetTelephone validates and assigns the telephone number.
func (t *Tenant) SetTelephone(v string) error {
	if err := validate.Telephone(v); err != nil {
		return err
	}
	t.Telephone = v
	return nil
}

// SetOccupation validates and assigns the occupation.
func (t *Tenant) SetOccupation(v string) error {
	if err := validate.Occupation(v); err != nil {
		return err
	}
	t.Occupation = v
	return nil
}

// Validate re-checks all staged fields before persisting.
func (t *Tenant) Validate() error {
	if err := validate.FirstName(t.FirstName); err != nil {
		return err
	}
	if err := validate.LastName(t.LastName); err != nil {
		return err
	}
	if err := validate.Telephone(t.Telephone); err != nil {
		return err
	}
	return validate.Occupation(t.Occupation)
}
