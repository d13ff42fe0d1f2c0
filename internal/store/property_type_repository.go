package store

import (
	"context"
	"database/sql"

	"github.com/teresa-solution/rental-management-service/internal/model"
)

// PropertyTypeRepository handles database operations for property types.
type PropertyTypeRepository struct {
	db *sql.DB
}

// NewPropertyTypeRepository creates a PropertyTypeRepository on the
// store's handle.
func NewPropertyTypeRepository(s *Store) *PropertyTypeRepository {
	return &PropertyTypeRepository{db: s.db}
}

// Create inserts a new property type and fills in its generated ID.
func (r *PropertyTypeRepository) Create(ctx context.Context, p *model.PropertyType) error {
	query := `INSERT INTO property_types (property_type_name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.PropertyTypeName).Scan(&p.ID)
}

// GetByID retrieves a property type by ID; nil, nil when absent.
func (r *PropertyTypeRepository) GetByID(ctx context.Context, id int64) (*model.PropertyType, error) {
	query := `SELECT id, property_type_name FROM property_types WHERE id = $1`
	p := &model.PropertyType{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.PropertyTypeName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all property types ordered by ID.
func (r *PropertyTypeRepository) List(ctx context.Context) ([]model.PropertyType, error) {
	query := `SELECT id, property_type_name FROM property_types ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
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

// Update writes the property type's mutable fields.
func (r *PropertyTypeRepository) Update(ctx context.Context, p *model.PropertyType) error {
	query := `UPDATE property_types SET property_type_name = $2 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, p.ID, p.PropertyTypeName)
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

// Delete removes a property type. Buildings of this type survive with a
// null property_type_id; landlord association rows are removed.
func (r *PropertyTypeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM property_types WHERE id = $1`, id)
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
