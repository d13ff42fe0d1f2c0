package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/teresa-solution/rental-management-service/internal/model"
	"github.com/teresa-solution/rental-management-service/internal/monitoring"
	"github.com/teresa-solution/rental-management-service/internal/relation"
	"github.com/teresa-solution/rental-management-service/internal/validate"
)

// BuildingService implements rental building CRUD: unique addresses,
// cross-field date validation, and the cascade delete of owned payments.
type BuildingService struct {
	buildings     BuildingStore
	payments      PaymentStore
	landlords     LandlordStore
	tenants       TenantStore
	propertyTypes PropertyTypeStore
}

func NewBuildingService(buildings BuildingStore, payments PaymentStore, landlords LandlordStore, tenants TenantStore, propertyTypes PropertyTypeStore) *BuildingService {
	return &BuildingService{
		buildings:     buildings,
		payments:      payments,
		landlords:     landlords,
		tenants:       tenants,
		propertyTypes: propertyTypes,
	}
}

// BuildingInput carries the writable building fields. Dates arrive
// already parsed; the API layer turns malformed strings into
// ValidationErrors before they get here.
type BuildingInput struct {
	Address        string
	StartingDate   model.Date
	EndingDate     model.Date
	LandlordID     *int64
	TenantID       *int64
	PropertyTypeID *int64
}

func (s *BuildingService) apply(b *model.RentalBuilding, in BuildingInput) error {
	if err := b.SetAddress(in.Address); err != nil {
		return err
	}
	if err := b.SetStartingDate(in.StartingDate); err != nil {
		return err
	}
	if err := b.SetEndingDate(in.EndingDate); err != nil {
		return err
	}
	b.LandlordID = in.LandlordID
	b.TenantID = in.TenantID
	b.PropertyTypeID = in.PropertyTypeID
	return nil
}

// checkReferences verifies that every foreign key in the input points at
// an existing row.
func (s *BuildingService) checkReferences(ctx context.Context, b *model.RentalBuilding) error {
	if b.LandlordID != nil {
		l, err := s.landlords.GetByID(ctx, *b.LandlordID)
		if err != nil {
			return err
		}
		if l == nil {
			return validate.Errorf("landlord_id", "landlord does not exist")
		}
	}
	if b.TenantID != nil {
		t, err := s.tenants.GetByID(ctx, *b.TenantID)
		if err != nil {
			return err
		}
		if t == nil {
			return validate.Errorf("tenant_id", "tenant does not exist")
		}
	}
	if b.PropertyTypeID != nil {
		p, err := s.propertyTypes.GetByID(ctx, *b.PropertyTypeID)
		if err != nil {
			return err
		}
		if p == nil {
			return validate.Errorf("property_type_id", "property type does not exist")
		}
	}
	return nil
}

// Create validates and persists a new building. The address must be
// unique across the store.
func (s *BuildingService) Create(ctx context.Context, in BuildingInput) (*model.RentalBuilding, error) {
	b := &model.RentalBuilding{}
	if err := s.apply(b, in); err != nil {
		return nil, reject("rental_building", err)
	}
	if err := b.Validate(); err != nil {
		return nil, reject("rental_building", err)
	}
	if err := s.checkReferences(ctx, b); err != nil {
		return nil, reject("rental_building", err)
	}

	existing, err := s.buildings.GetByAddress(ctx, b.Address)
	if err != nil {
		log.Error().Err(err).Msg("Failed to check address uniqueness")
		return nil, err
	}
	if existing != nil {
		return nil, reject("rental_building", validate.Errorf("address", "address is already registered"))
	}

	if err := s.buildings.Create(ctx, b); err != nil {
		log.Error().Err(err).Msg("Failed to create rental building")
		return nil, err
	}
	monitoring.EntitiesCreated.WithLabelValues("rental_building").Inc()
	return b, nil
}

// Get returns a building with landlord, tenant, property type and
// payments loaded for the building-full view.
func (s *BuildingService) Get(ctx context.Context, id int64) (*model.RentalBuilding, error) {
	b, err := s.buildings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	if b.LandlordID != nil {
		if b.Landlord, err = s.landlords.GetByID(ctx, *b.LandlordID); err != nil {
			return nil, err
		}
	}
	if b.TenantID != nil {
		if b.Tenant, err = s.tenants.GetByID(ctx, *b.TenantID); err != nil {
			return nil, err
		}
	}
	if b.PropertyTypeID != nil {
		if b.PropertyType, err = s.propertyTypes.GetByID(ctx, *b.PropertyTypeID); err != nil {
			return nil, err
		}
	}
	if b.Payments, err = s.payments.ListByBuilding(ctx, id); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all buildings without relations.
func (s *BuildingService) List(ctx context.Context) ([]model.RentalBuilding, error) {
	return s.buildings.List(ctx)
}

// Update applies the input through the validated setters on a staged
// copy, re-checking address uniqueness when it changes.
func (s *BuildingService) Update(ctx context.Context, id int64, in BuildingInput) (*model.RentalBuilding, error) {
	b, err := s.buildings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	staged := *b
	// Clear staged dates so a lower start with an existing later end (or
	// vice versa) is judged against the incoming pair, not the old one.
	staged.StartingDate, staged.EndingDate = model.Date{}, model.Date{}
	if err := s.apply(&staged, in); err != nil {
		return nil, reject("rental_building", err)
	}
	if err := staged.Validate(); err != nil {
		return nil, reject("rental_building", err)
	}
	if err := s.checkReferences(ctx, &staged); err != nil {
		return nil, reject("rental_building", err)
	}

	if staged.Address != b.Address {
		existing, err := s.buildings.GetByAddress(ctx, staged.Address)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, reject("rental_building", validate.Errorf("address", "address is already registered"))
		}
	}

	if err := s.buildings.Update(ctx, &staged); err != nil {
		log.Error().Err(err).Msg("Failed to update rental building")
		return nil, err
	}
	return &staged, nil
}

// Delete removes a building and, per the relation graph, its payments.
func (s *BuildingService) Delete(ctx context.Context, id int64) error {
	b, err := s.buildings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}

	for _, edge := range relation.Children(relation.KindRentalBuilding) {
		if edge.Child == relation.KindPayment && edge.OnDelete == relation.ActionCascade {
			payments, err := s.payments.ListByBuilding(ctx, id)
			if err != nil {
				return err
			}
			for _, p := range payments {
				if err := s.payments.Delete(ctx, p.ID); err != nil {
					return err
				}
			}
		}
	}

	if err := s.buildings.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("building_id", id).Msg("Failed to delete rental building")
		return err
	}
	return nil
}
