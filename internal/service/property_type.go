package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/teresa-solution/rental-management-service/internal/model"
	"github.com/teresa-solution/rental-management-service/internal/monitoring"
	"github.com/teresa-solution/rental-management-service/internal/relation"
)

// PropertyTypeService implements property type CRUD. Deleting a type
// never deletes buildings; their type reference resets to null.
type PropertyTypeService struct {
	propertyTypes PropertyTypeStore
	buildings     BuildingStore
}

func NewPropertyTypeService(propertyTypes PropertyTypeStore, buildings BuildingStore) *PropertyTypeService {
	return &PropertyTypeService{propertyTypes: propertyTypes, buildings: buildings}
}

// Create validates and persists a new property type.
func (s *PropertyTypeService) Create(ctx context.Context, name string) (*model.PropertyType, error) {
	p := &model.PropertyType{}
	if err := p.SetPropertyTypeName(name); err != nil {
		return nil, reject("property_type", err)
	}

	if err := s.propertyTypes.Create(ctx, p); err != nil {
		log.Error().Err(err).Msg("Failed to create property type")
		return nil, err
	}
	monitoring.EntitiesCreated.WithLabelValues("property_type").Inc()
	return p, nil
}

// Get returns a property type with its buildings loaded for the
// property-type-full view.
func (s *PropertyTypeService) Get(ctx context.Context, id int64) (*model.PropertyType, error) {
	p, err := s.propertyTypes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if p.RentalBuildings, err = s.buildings.ListByPropertyType(ctx, id); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all property types without relations.
func (s *PropertyTypeService) List(ctx context.Context) ([]model.PropertyType, error) {
	return s.propertyTypes.List(ctx)
}

// Update renames a property type through the validated setter on a
// staged copy.
func (s *PropertyTypeService) Update(ctx context.Context, id int64, name string) (*model.PropertyType, error) {
	p, err := s.propertyTypes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	staged := *p
	if err := staged.SetPropertyTypeName(name); err != nil {
		return nil, reject("property_type", err)
	}

	if err := s.propertyTypes.Update(ctx, &staged); err != nil {
		log.Error().Err(err).Msg("Failed to update property type")
		return nil, err
	}
	return &staged, nil
}

// Delete removes a property type; per the relation graph its buildings
// keep existing with the type reference cleared.
func (s *PropertyTypeService) Delete(ctx context.Context, id int64) error {
	p, err := s.propertyTypes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	for _, edge := range relation.SetNullTargets(relation.KindPropertyType) {
		if edge.Child == relation.KindRentalBuilding {
			if err := s.buildings.ClearPropertyType(ctx, id); err != nil {
				return err
			}
		}
	}

	if err := s.propertyTypes.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("property_type_id", id).Msg("Failed to delete property type")
		return err
	}
	return nil
}
