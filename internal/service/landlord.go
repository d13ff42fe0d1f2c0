package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/teresa-solution/rental-management-service/internal/model"
	"github.com/teresa-solution/rental-management-service/internal/monitoring"
	"github.com/teresa-solution/rental-management-service/internal/relation"
	"github.com/teresa-solution/rental-management-service/internal/validate"
)

// LandlordService implements landlord registration, authentication and
// CRUD, including the cascade delete of owned tenants and buildings.
type LandlordService struct {
	landlords LandlordStore
	tenants   TenantStore
	buildings BuildingStore
	payments  PaymentStore
}

func NewLandlordService(landlords LandlordStore, tenants TenantStore, buildings BuildingStore, payments PaymentStore) *LandlordService {
	return &LandlordService{
		landlords: landlords,
		tenants:   tenants,
		buildings: buildings,
		payments:  payments,
	}
}

// LandlordUpdate carries the mutable landlord fields; nil means "leave
// unchanged".
type LandlordUpdate struct {
	Username *string
	Password *string
}

// Register creates a landlord account. The username must be unique across
// the store; the password is checked against the strength rule and only
// its hash is kept.
func (s *LandlordService) Register(ctx context.Context, username, password string) (*model.Landlord, error) {
	l := &model.Landlord{}
	if err := l.SetUsername(username); err != nil {
		return nil, reject("landlord", err)
	}
	if err := l.SetPassword(password); err != nil {
		return nil, reject("landlord", err)
	}

	existing, err := s.landlords.GetByUsername(ctx, username)
	if err != nil {
		log.Error().Err(err).Msg("Failed to check username uniqueness")
		return nil, err
	}
	if existing != nil {
		return nil, reject("landlord", validate.Errorf("username", "username is already taken"))
	}

	if err := s.landlords.Create(ctx, l); err != nil {
		log.Error().Err(err).Msg("Failed to create landlord")
		return nil, err
	}
	monitoring.EntitiesCreated.WithLabelValues("landlord").Inc()
	return l, nil
}

// Authenticate resolves a username/password pair to a landlord, or
// ErrInvalidCredentials. Unknown usernames and wrong passwords are not
// distinguished.
func (s *LandlordService) Authenticate(ctx context.Context, username, password string) (*model.Landlord, error) {
	l, err := s.landlords.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if l == nil || !l.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return l, nil
}

// Get returns a landlord with its relations loaded for the landlord-full
// view: tenants, buildings with payments, and property types.
func (s *LandlordService) Get(ctx context.Context, id int64) (*model.Landlord, error) {
	l, err := s.landlords.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrNotFound
	}

	if l.Tenants, err = s.tenants.ListByLandlord(ctx, id); err != nil {
		return nil, err
	}
	if l.RentalBuildings, err = s.buildings.ListByLandlord(ctx, id); err != nil {
		return nil, err
	}
	for i := range l.RentalBuildings {
		b := &l.RentalBuildings[i]
		if b.Payments, err = s.payments.ListByBuilding(ctx, b.ID); err != nil {
			return nil, err
		}
	}
	if l.PropertyTypes, err = s.landlords.PropertyTypes(ctx, id); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns all landlords without relations.
func (s *LandlordService) List(ctx context.Context) ([]model.Landlord, error) {
	return s.landlords.List(ctx)
}

// Update applies the given changes through the validated setters on a
// staged copy, then commits the copy in one write.
func (s *LandlordService) Update(ctx context.Context, id int64, in LandlordUpdate) (*model.Landlord, error) {
	l, err := s.landlords.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrNotFound
	}

	staged := *l
	if in.Username != nil {
		if err := staged.SetUsername(*in.Username); err != nil {
			return nil, reject("landlord", err)
		}
		if staged.Username != l.Username {
			existing, err := s.landlords.GetByUsername(ctx, staged.Username)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, reject("landlord", validate.Errorf("username", "username is already taken"))
			}
		}
	}
	if in.Password != nil {
		if err := staged.SetPassword(*in.Password); err != nil {
			return nil, reject("landlord", err)
		}
	}
	if err := staged.Validate(); err != nil {
		return nil, reject("landlord", err)
	}

	if err := s.landlords.Update(ctx, &staged); err != nil {
		log.Error().Err(err).Msg("Failed to update landlord")
		return nil, err
	}
	return &staged, nil
}

// Delete removes a landlord and, per the relation graph, cascades to its
// tenants and buildings (and through buildings to payments). The schema
// enforces the same rules, so this stays correct on any backing store.
func (s *LandlordService) Delete(ctx context.Context, id int64) error {
	l, err := s.landlords.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrNotFound
	}

	for _, edge := range relation.Children(relation.KindLandlord) {
		if edge.OnDelete != relation.ActionCascade {
			continue
		}
		switch edge.Child {
		case relation.KindTenant:
			tenants, err := s.tenants.ListByLandlord(ctx, id)
			if err != nil {
				return err
			}
			for _, t := range tenants {
				if err := s.tenants.Delete(ctx, t.ID); err != nil {
					return err
				}
			}
		case relation.KindRentalBuilding:
			buildings, err := s.buildings.ListByLandlord(ctx, id)
			if err != nil {
				return err
			}
			for _, b := range buildings {
				if err := s.deleteBuildingCascade(ctx, b.ID); err != nil {
					return err
				}
			}
		}
	}

	if err := s.landlords.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("landlord_id", id).Msg("Failed to delete landlord")
		return err
	}
	log.Info().Int64("landlord_id", id).Msg("Deleted landlord with owned tenants and buildings")
	return nil
}

// deleteBuildingCascade removes a building and its owned payments.
func (s *LandlordService) deleteBuildingCascade(ctx context.Context, buildingID int64) error {
	payments, err := s.payments.ListByBuilding(ctx, buildingID)
	if err != nil {
		return err
	}
	for _, p := range payments {
		if err := s.payments.Delete(ctx, p.ID); err != nil {
			return err
		}
	}
	return s.buildings.Delete(ctx, buildingID)
}

// AssociatePropertyType links the landlord to a property type.
func (s *LandlordService) AssociatePropertyType(ctx context.Context, landlordID, propertyTypeID int64) error {
	l, err := s.landlords.GetByID(ctx, landlordID)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrNotFound
	}
	return s.landlords.AssociatePropertyType(ctx, landlordID, propertyTypeID)
}

// DissociatePropertyType removes a landlord / property type link.
func (s *LandlordService) DissociatePropertyType(ctx context.Context, landlordID, propertyTypeID int64) error {
	return s.landlords.DissociatePropertyType(ctx, landlordID, propertyTypeID)
}
