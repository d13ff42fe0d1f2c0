package model

import "github.com/teresa-solution/rental-management-service/internal/validate"

// RentalBuilding represents the rental_buildings table. Address is unique
// across the store. The building owns its payments (cascade delete); the
// landlord, tenant and property type links are plain foreign keys.
type RentalBuilding struct {
	ID             int64  `json:"id"`
	Address        string `json:"address"`
	StartingDate   Date   `json:"starting_date"`
	EndingDate     Date   `json:"ending_date"`
	LandlordID     *int64 `json:"landlord_id,omitempty"`
	TenantID       *int64 `json:"tenant_id,omitempty"`
	PropertyTypeID *int64 `json:"property_type_id,omitempty"`

	Landlord     *Landlord     `json:"landlord,omitempty"`
	Tenant       *Tenant       `json:"tenant,omitempty"`
	PropertyType *PropertyType `json:"property_type,omitempty"`
	Payments     []Payment     `json:"payments,omitempty"`
}

// SetAddress validates and assigns the address.
func (b *RentalBuilding) SetAddress(v string) error {
	if err := validate.Address(v); err != nil {
		return err
	}
	b.Address = v
	return nil
}

// SetStartingDate validates and assigns the lease start date.
func (b *RentalBuilding) SetStartingDate(d Date) error {
	if d.IsZero() {
		return validate.Errorf("starting_date", "starting_date is required")
	}
	b.StartingDate = d
	return nil
}

// SetEndingDate validates and assigns the lease end date. The ordering
// check against starting_date only runs when a start date is already
// staged, so partially constructed buildings are accepted.
func (b *RentalBuilding) SetEndingDate(d Date) error {
	if d.IsZero() {
		return validate.Errorf("ending_date", "ending_date is required")
	}
	if !b.StartingDate.IsZero() && !d.After(b.StartingDate) {
		return validate.Errorf("ending_date", "ending date must be after starting date")
	}
	b.EndingDate = d
	return nil
}

// Validate re-checks all staged fields, including the cross-field date
// ordering, before persisting.
func (b *RentalBuilding) Validate() error {
	if err := validate.Address(b.Address); err != nil {
		return err
	}
	if b.StartingDate.IsZero() {
		return validate.Errorf("starting_date", "starting_date is required")
	}
	if b.EndingDate.IsZero() {
		return validate.Errorf("ending_date", "ending_date is required")
	}
	if !b.EndingDate.After(b.StartingDate) {
		return validate.Errorf("ending_date", "ending date must be after starting date")
	}
	return nil
}
