package store

import (
	"context"
	"database/sql"

	"github.com/teresa-solution/rental-management-service/internal/model"
)

// LandlordRepository handles database operations for landlords.
type LandlordRepository struct {
	db *sql.DB
}

// NewLandlordRepository creates a LandlordRepository on the store's handle.
func NewLandlordRepository(s *Store) *LandlordRepository {
	return &LandlordRepository{db: s.db}
}

// Create inserts a new landlord and fills in its generated ID.
func (r *LandlordRepository) Create(ctx context.Context, l *model.Landlord) error {
	query := `INSERT INTO landlords (username, password_hash) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, l.Username, l.PasswordHash).Scan(&l.ID)
}

// GetByID retrieves a landlord by ID; nil, nil when absent.
func (r *LandlordRepository) GetByID(ctx context.Context, id int64) (*model.Landlord, error) {
	query := `SELECT id, username, password_hash FROM landlords WHERE id = $1`
	l := &model.Landlord{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Username, &l.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// GetByUsername retrieves a landlord by its unique username; nil, nil
// when absent. Used for the check-then-insert uniqueness rule and login.
func (r *LandlordRepository) GetByUsername(ctx context.Context, username string) (*model.Landlord, error) {
	query := `SELECT id, username, password_hash FROM landlords WHERE username = $1`
	l := &model.Landlord{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&l.ID, &l.Username, &l.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// List returns all landlords ordered by ID.
func (r *LandlordRepository) List(ctx context.Context) ([]model.Landlord, error) {
	query := `SELECT id, username, password_hash FROM landlords ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	landlords := make([]model.Landlord, 0)
	for rows.Next() {
		var l model.Landlord
		if err := rows.Scan(&l.ID, &l.Username, &l.PasswordHash); err != nil {
			return nil, err
		}
		landlords = append(landlords, l)
	}
	return landlords, rows.Err()
}

// Update writes the landlord's mutable fields.
func (r *LandlordRepository) Update(ctx context.Context, l *model.Landlord) error {
	query := `UPDATE landlords SET username = $2, password_hash = $3 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, l.ID, l.Username, l.PasswordHash)
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

// Delete removes a landlord. Owned tenants and buildings go with it via
// the schema's cascade constraints; the service layer drives the same
// cascade explicitly so the behavior holds for any backing store.
func (r *LandlordRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM landlords WHERE id = $1`, id)
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

// AssociatePropertyType links a landlord to a property type.
func (r *LandlordRepository) AssociatePropertyType(ctx context.Context, landlordID, propertyTypeID int64) error {
	query := `INSERT INTO landlord_property_types (landlord_id, property_type_id)
              VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, landlordID, propertyTypeID)
	return err
}

// DissociatePropertyType removes a landlord / property type link.
func (r *LandlordRepository) DissociatePropertyType(ctx context.Context, landlordID, propertyTypeID int64) error {
	query := `DELETE FROM landlord_property_types WHERE landlord_id = $1 AND property_type_id = $2`
	_, err := r.db.ExecContext(ctx, query, landlordID, propertyTypeID)
	return err
}

// PropertyTypes returns the property types associated with a landlord.
func (r *LandlordRepository) PropertyTypes(ctx context.Context, landlordID int64) ([]model.PropertyType, error) {
	query := `SELECT pt.id, pt.property_type_name
              FROM property_types pt
              JOIN landlord_property_types lpt ON lpt.property_type_id = pt.id
              WHERE lpt.landlord_id = $1 ORDER BY pt.id`
	rows, err := r.db.QueryContext(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]model.PropertyType, 0)
	for rows.Next() {
		var p model.PropertyType
		if err := rows.Scan(&p.ID, &p.PropertyTypeName); err != nil {
			return nil, err
		}
		types = append(types, p)
	}
	return types, rows.Err()
}
