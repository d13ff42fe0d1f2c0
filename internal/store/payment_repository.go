package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/teresa-solution/rental-management-service/internal/model"
)

// PaymentRepository handles database operations for rent payments.
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a PaymentRepository on the store's handle.
func NewPaymentRepository(s *Store) *PaymentRepository {
	return &PaymentRepository{db: s.db}
}

const paymentColumns = `id, monthly_price, price, payment_status, payment_date, due_date, payment_period, rental_building_id`

// Create inserts a new payment and fills in its generated ID.
func (r *PaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	query := `INSERT INTO payments (monthly_price, price, payment_status, payment_date, due_date, payment_period, rental_building_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.MonthlyPrice, p.Price, p.PaymentStatus,
		p.PaymentDate.Time(), p.DueDate.Time(), p.PaymentPeriod,
		nullableID(p.RentalBuildingID),
	).Scan(&p.ID)
}

// GetByID retrieves a payment by ID; nil, nil when absent.
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	p, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all payments ordered by ID.
func (r *PaymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	return r.queryPayments(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
}

// ListByBuilding returns the payments of a rental building.
func (r *PaymentRepository) ListByBuilding(ctx context.Context, buildingID int64) ([]model.Payment, error) {
	return r.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE rental_building_id = $1 ORDER BY id`, buildingID)
}

func (r *PaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]model.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]model.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func scanPayment(row rowScanner) (*model.Payment, error) {
	p := &model.Payment{}
	var paymentDate, dueDate time.Time
	var buildingID sql.NullInt64
	err := row.Scan(&p.ID, &p.MonthlyPrice, &p.Price, &p.PaymentStatus,
		&paymentDate, &dueDate, &p.PaymentPeriod, &buildingID)
	if err != nil {
		return nil, err
	}
	p.PaymentDate = model.DateOf(paymentDate)
	p.DueDate = model.DateOf(dueDate)
	p.RentalBuildingID = idPointer(buildingID)
	return p, nil
}

// Update writes the payment's mutable fields.
func (r *PaymentRepository) Update(ctx context.Context, p *model.Payment) error {
	query := `UPDATE payments
              SET monthly_price = $2, price = $3, payment_status = $4, payment_date = $5, due_date = $6, payment_period = $7, rental_building_id = $8
              WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		p.ID, p.MonthlyPrice, p.Price, p.PaymentStatus,
		p.PaymentDate.Time(), p.DueDate.Time(), p.PaymentPeriod,
		nullableID(p.RentalBuildingID))
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

// Delete removes a payment.
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
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
