package model

import "github.com/teresa-solution/rental-management-service/internal/validate"

// PropertyType represents the property_types table. Landlords associate
// through the landlord_property_types join table; buildings reference a
// property type directly.
type PropertyType struct {
	ID               int64  `json:"id"`
	PropertyTypeName string `json:"property_type_name"`

	RentalBuildings []RentalBuilding `json:"rental_buildings,omitempty"`
	Landlords       []Landlord       `json:"landlords,omitempty"`
}

// SetPropertyTypeName validates and assigns the type name.
func (p *PropertyType) SetPropertyTypeName(v string) error {
	if err := validate.PropertyTypeName(v); err != nil {
		return err
	}
	p.PropertyTypeName = v
	return nil
}

// Validate re-checks all staged fields before persisting.
func (p *PropertyType) Validate() error {
	return validate.PropertyTypeName(p.PropertyTypeName)
}
