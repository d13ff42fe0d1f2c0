// Package service implements the application operations over the entity
// repositories: request validation through the model setters, uniqueness
// by check-then-insert, relation loading for projection, and deletes
// driven by the relation graph's cascade rules.
package service

import (
	"context"
	"errors"

	"github.com/teresa-solution/rental-management-service/internal/model"
	"github.com/teresa-solution/rental-management-service/internal/monitoring"
	"github.com/teresa-solution/rental-management-service/internal/validate"
)

// ErrNotFound is returned when an entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned on failed authentication.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Repository contracts consumed by the services. The postgres
// repositories in internal/store satisfy them; tests use in-memory fakes.

type LandlordStore interface {
	Create(ctx context.Context, l *model.Landlord) error
	GetByID(ctx context.Context, id int64) (*model.Landlord, error)
	GetByUsername(ctx context.Context, username string) (*model.Landlord, error)
	List(ctx context.Context) ([]model.Landlord, error)
	Update(ctx context.Context, l *model.Landlord) error
	Delete(ctx context.Context, id int64) error
	AssociatePropertyType(ctx context.Context, landlordID, propertyTypeID int64) error
	DissociatePropertyType(ctx context.Context, landlordID, propertyTypeID int64) error
	PropertyTypes(ctx context.Context, landlordID int64) ([]model.PropertyType, error)
}

type TenantStore interface {
	Create(ctx context.Context, t *model.Tenant) error
	GetByID(ctx context.Context, id int64) (*model.Tenant, error)
	List(ctx context.Context) ([]model.Tenant, error)
	ListByLandlord(ctx context.Context, landlordID int64) ([]model.Tenant, error)
	Update(ctx context.Context, t *model.Tenant) error
	Delete(ctx context.Context, id int64) error
}

type BuildingStore interface {
	Create(ctx context.Context, b *model.RentalBuilding) error
	GetByID(ctx context.Context, id int64) (*model.RentalBuilding, error)
	GetByAddress(ctx context.Context, address string) (*model.RentalBuilding, error)
	List(ctx context.Context) ([]model.RentalBuilding, error)
	ListByLandlord(ctx context.Context, landlordID int64) ([]model.RentalBuilding, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]model.RentalBuilding, error)
	ListByPropertyType(ctx context.Context, propertyTypeID int64) ([]model.RentalBuilding, error)
	Update(ctx context.Context, b *model.RentalBuilding) error
	Delete(ctx context.Context, id int64) error
	ClearTenant(ctx context.Context, tenantID int64) error
	ClearPropertyType(ctx context.Context, propertyTypeID int64) error
}

type PropertyTypeStore interface {
	Create(ctx context.Context, p *model.PropertyType) error
	GetByID(ctx context.Context, id int64) (*model.PropertyType, error)
	List(ctx context.Context) ([]model.PropertyType, error)
	Update(ctx context.Context, p *model.PropertyType) error
	Delete(ctx context.Context, id int64) error
}

type PaymentStore interface {
	Create(ctx context.Context, p *model.Payment) error
	GetByID(ctx context.Context, id int64) (*model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	ListByBuilding(ctx context.Context, buildingID int64) ([]model.Payment, error)
	Update(ctx context.Context, p *model.Payment) error
	Delete(ctx context.Context, id int64) error
}

// reject counts a validation failure for the entity and passes the error
// through unchanged.
func reject(entity string, err error) error {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		monitoring.ValidationFailures.WithLabelValues(entity).Inc()
	}
	return err
}
