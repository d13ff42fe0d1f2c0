package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/teresa-solution/rental-management-service/internal/model"
)

// BuildingRepository handles database operations for rental buildings.
type BuildingRepository struct {
	db *sql.DB
}

// NewBuildingRepository creates a BuildingRepository on the store's handle.
func NewBuildingRepository(s *Store) *BuildingRepository {
	return &BuildingRepository{db: s.db}
}

const buildingColumns = `id, address, starting_date, ending_date, landlord_id, tenant_id, property_type_id`

// Create inserts a new building and fills in its generated ID.
func (r *BuildingRepository) Create(ctx context.Context, b *model.RentalBuilding) error {
	query := `INSERT INTO rental_buildings (address, starting_date, ending_date, landlord_id, tenant_id, property_type_id)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		b.Address, b.StartingDate.Time(), b.EndingDate.Time(),
		nullableID(b.LandlordID), nullableID(b.TenantID), nullableID(b.PropertyTypeID),
	).Scan(&b.ID)
}

// GetByID retrieves a building by ID; nil, nil when absent.
func (r *BuildingRepository) GetByID(ctx context.Context, id int64) (*model.RentalBuilding, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+buildingColumns+` FROM rental_buildings WHERE id = $1`, id)
	b, err := scanBuilding(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetByAddress retrieves a building by its unique address; nil, nil when
// absent. Used for the check-then-insert uniqueness rule.
func (r *BuildingRepository) GetByAddress(ctx context.Context, address string) (*model.RentalBuilding, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+buildingColumns+` FROM rental_buildings WHERE address = $1`, address)
	b, err := scanBuilding(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all buildings ordered by ID.
func (r *BuildingRepository) List(ctx context.Context) ([]model.RentalBuilding, error) {
	return r.queryBuildings(ctx, `SELECT `+buildingColumns+` FROM rental_buildings ORDER BY id`)
}

// ListByLandlord returns the buildings owned by a landlord.
func (r *BuildingRepository) ListByLandlord(ctx context.Context, landlordID int64) ([]model.RentalBuilding, error) {
	return r.queryBuildings(ctx,
		`SELECT `+buildingColumns+` FROM rental_buildings WHERE landlord_id = $1 ORDER BY id`, landlordID)
}

// ListByTenant returns the buildings rented by a tenant.
func (r *BuildingRepository) ListByTenant(ctx context.Context, tenantID int64) ([]model.RentalBuilding, error) {
	return r.queryBuildings(ctx,
		`SELECT `+buildingColumns+` FROM rental_buildings WHERE tenant_id = $1 ORDER BY id`, tenantID)
}

// ListByPropertyType returns the buildings of a property type.
func (r *BuildingRepository) ListByPropertyType(ctx context.Context, propertyTypeID int64) ([]model.RentalBuilding, error) {
	return r.queryBuildings(ctx,
		`SELECT `+buildingColumns+` FROM rental_buildings WHERE property_type_id = $1 ORDER BY id`, propertyTypeID)
}

func (r *BuildingRepository) queryBuildings(ctx context.Context, query string, args ...any) ([]model.RentalBuilding, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buildings := make([]model.RentalBuilding, 0)
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		buildings = append(buildings, *b)
	}
	return buildings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuilding(row rowScanner) (*model.RentalBuilding, error) {
	b := &model.RentalBuilding{}
	var starting, ending time.Time
	var landlordID, tenantID, propertyTypeID sql.NullInt64
	err := row.Scan(&b.ID, &b.Address, &starting, &ending, &landlordID, &tenantID, &propertyTypeID)
	if err != nil {
		return nil, err
	}
	b.StartingDate = model.DateOf(starting)
	b.EndingDate = model.DateOf(ending)
	b.LandlordID = idPointer(landlordID)
	b.TenantID = idPointer(tenantID)
	b.PropertyTypeID = idPointer(propertyTypeID)
	return b, nil
}

// Update writes the building's mutable fields.
func (r *BuildingRepository) Update(ctx context.Context, b *model.RentalBuilding) error {
	query := `UPDATE rental_buildings
              SET address = $2, starting_date = $3, ending_date = $4, landlord_id = $5, tenant_id = $6, property_type_id = $7
              WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		b.ID, b.Address, b.StartingDate.Time(), b.EndingDate.Time(),
		nullableID(b.LandlordID), nullableID(b.TenantID), nullableID(b.PropertyTypeID))
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a building; its payments go with it.
func (r *BuildingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rental_buildings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ClearTenant nulls the tenant reference on every building of a tenant.
func (r *BuildingRepository) ClearTenant(ctx context.Context, tenantID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE rental_buildings SET tenant_id = NULL WHERE tenant_id = $1`, tenantID)
	return err
}

// ClearPropertyType nulls the type reference on every building of a
// property type.
func (r *BuildingRepository) ClearPropertyType(ctx context.Context, propertyTypeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE rental_buildings SET property_type_id = NULL WHERE property_type_id = $1`, propertyTypeID)
	return err
}
