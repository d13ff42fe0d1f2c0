package store

import (
	"context"
	"database/sql"

	"github.com/teresa-solution/rental-management-service/internal/model"
)

// TenantRepository handles database operations for tenants.
type TenantRepository struct {
	db *sql.DB
}

// NewTenantRepository creates a TenantRepository on the store's handle.
func NewTenantRepository(s *Store) *TenantRepository {
	return &TenantRepository{db: s.db}
}

// Create inserts a new tenant and fills in its generated ID.
func (r *TenantRepository) Create(ctx context.Context, t *model.Tenant) error {
	query := `INSERT INTO tenants (first_name, last_name, telephone, occupation, landlord_id)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		t.FirstName, t.LastName, t.Telephone, t.Occupation, nullableID(t.LandlordID),
	).Scan(&t.ID)
}

// GetByID retrieves a tenant by ID; nil, nil when absent.
func (r *TenantRepository) GetByID(ctx context.Context, id int64) (*model.Tenant, error) {
	query := `SELECT id, first_name, last_name, telephone, occupation, landlord_id
              FROM tenants WHERE id = $1`
	t := &model.Tenant{}
	var landlordID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Telephone, &t.Occupation, &landlordID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.LandlordID = idPointer(landlordID)
	return t, nil
}

// List returns all tenants ordered by ID.
func (r *TenantRepository) List(ctx context.Context) ([]model.Tenant, error) {
	query := `SELECT id, first_name, last_name, telephone, occupation, landlord_id
              FROM tenants ORDER BY id`
	return r.queryTenants(ctx, query)
}

// ListByLandlord returns the tenants owned by a landlord.
func (r *TenantRepository) ListByLandlord(ctx context.Context, landlordID int64) ([]model.Tenant, error) {
	query := `SELECT id, first_name, last_name, telephone, occupation, landlord_id
              FROM tenants WHERE landlord_id = $1 ORDER BY id`
	return r.queryTenants(ctx, query, landlordID)
}

func (r *TenantRepository) queryTenants(ctx context.Context, query string, args ...any) ([]model.Tenant, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tenants := make([]model.Tenant, 0)
	for rows.Next() {
		var t model.Tenant
		var landlordID sql.NullInt64
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Telephone, &t.Occupation, &landlordID); err != nil {
			return nil, err
		}
		t.LandlordID = idPointer(landlordID)
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

// Update writes the tenant's mutable fields.
func (r *TenantRepository) Update(ctx context.Context, t *model.Tenant) error {
	query := `UPDATE tenants SET first_name = $2, last_name = $3, telephone = $4, occupation = $5, landlord_id = $6
              WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		t.ID, t.FirstName, t.LastName, t.Telephone, t.Occupation, nullableID(t.LandlordID))
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

// Delete removes a tenant. Buildings referencing it keep existing with a
// null tenant_id.
func (r *TenantRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = $1`, id)
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
