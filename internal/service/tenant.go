package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/teresa-solution/rental-management-service/internal/model"
	"github.com/teresa-solution/rental-management-service/internal/monitoring"
	"github.com/teresa-solution/rental-management-service/internal/relation"
	"github.com/teresa-solution/rental-management-service/internal/validate"
)

// TenantService implements tenant CRUD. Tenants reference buildings
// without owning them: deleting a tenant only nulls the back references.
type TenantService struct {
	tenants   TenantStore
	buildings BuildingStore
	landlords LandlordStore
}

func NewTenantService(tenants TenantStore, buildings BuildingStore, landlords LandlordStore) *TenantService {
	return &TenantService{tenants: tenants, buildings: buildings, landlords: landlords}
}

// TenantInput carries the writable tenant fields.
type TenantInput struct {
	FirstName  string
	LastName   string
	Telephone  string
	Occupation string
	LandlordID *int64
}

func (s *TenantService) apply(t *model.Tenant, in TenantInput) error {
	if err := t.SetFirstName(in.FirstName); err != nil {
		return err
	}
	if err := t.SetLastName(in.LastName); err != nil {
		return err
	}
	if err := t.SetTelephone(in.Telephone); err != nil {
		return err
	}
	if err := t.SetOccupation(in.Occupation); err != nil {
		return err
	}
	t.LandlordID = in.LandlordID
	return nil
}

// Create validates and persists a new tenant. A referenced landlord must
// exist.
func (s *TenantService) Create(ctx context.Context, in TenantInput) (*model.Tenant, error) {
	t := &model.Tenant{}
	if err := s.apply(t, in); err != nil {
		return nil, reject("tenant", err)
	}
	if err := t.Validate(); err != nil {
		return nil, reject("tenant", err)
	}

	if t.LandlordID != nil {
		owner, err := s.landlords.GetByID(ctx, *t.LandlordID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, reject("tenant", validate.Errorf("landlord_id", "landlord does not exist"))
		}
	}

	if err := s.tenants.Create(ctx, t); err != nil {
		log.Error().Err(err).Msg("Failed to create tenant")
		return nil, err
	}
	monitoring.EntitiesCreated.WithLabelValues("tenant").Inc()
	return t, nil
}

// Get returns a tenant with its rented buildings loaded for the
// tenant-with-buildings view.
func (s *TenantService) Get(ctx context.Context, id int64) (*model.Tenant, error) {
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	if t.RentalBuildings, err = s.buildings.ListByTenant(ctx, id); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns all tenants without relations.
func (s *TenantService) List(ctx context.Context) ([]model.Tenant, error) {
	return s.tenants.List(ctx)
}

// Update applies the input through the validated setters on a staged copy
// and commits it in one write.
func (s *TenantService) Update(ctx context.Context, id int64, in TenantInput) (*model.Tenant, error) {
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}

	staged := *t
	if err := s.apply(&staged, in); err != nil {
		return nil, reject("tenant", err)
	}
	if err := staged.Validate(); err != nil {
		return nil, reject("tenant", err)
	}

	if err := s.tenants.Update(ctx, &staged); err != nil {
		log.Error().Err(err).Msg("Failed to update tenant")
		return nil, err
	}
	return &staged, nil
}

// Delete removes a tenant. Per the relation graph the tenant->building
// edge is set-null, so the tenant's buildings survive with the reference
// cleared.
func (s *TenantService) Delete(ctx context.Context, id int64) error {
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNotFound
	}

	for _, edge := range relation.SetNullTargets(relation.KindTenant) {
		if edge.Child == relation.KindRentalBuilding {
			if err := s.buildings.ClearTenant(ctx, id); err != nil {
				return err
			}
		}
	}

	if err := s.tenants.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("tenant_id", id).Msg("Failed to delete tenant")
		return err
	}
	return nil
}
