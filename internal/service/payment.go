package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/teresa-solution/rental-management-service/internal/model"
	"github.com/teresa-solution/rental-management-service/internal/monitoring"
	"github.com/teresa-solution/rental-management-service/internal/validate"
)

// PaymentService implements rent payment CRUD. Payments belong to a
// building; an unpaid payment recorded past its due date raises an alert.
type PaymentService struct {
	payments  PaymentStore
	buildings BuildingStore
}

func NewPaymentService(payments PaymentStore, buildings BuildingStore) *PaymentService {
	return &PaymentService{payments: payments, buildings: buildings}
}

// PaymentInput carries the writable payment fields.
type PaymentInput struct {
	MonthlyPrice     int
	Price            int
	PaymentStatus    bool
	PaymentDate      model.Date
	DueDate          model.Date
	PaymentPeriod    string
	RentalBuildingID *int64
}

func (s *PaymentService) apply(p *model.Payment, in PaymentInput) error {
	if err := p.SetMonthlyPrice(in.MonthlyPrice); err != nil {
		return err
	}
	if err := p.SetPrice(in.Price); err != nil {
		return err
	}
	if err := p.SetPaymentPeriod(in.PaymentPeriod); err != nil {
		return err
	}
	p.PaymentStatus = in.PaymentStatus
	p.PaymentDate = in.PaymentDate
	p.DueDate = in.DueDate
	p.RentalBuildingID = in.RentalBuildingID
	return nil
}

// Create validates and persists a new payment. The referenced building
// must exist.
func (s *PaymentService) Create(ctx context.Context, in PaymentInput) (*model.Payment, error) {
	p := &model.Payment{}
	if err := s.apply(p, in); err != nil {
		return nil, reject("payment", err)
	}
	if err := p.Validate(); err != nil {
		return nil, reject("payment", err)
	}

	if p.RentalBuildingID != nil {
		b, err := s.buildings.GetByID(ctx, *p.RentalBuildingID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, reject("payment", validate.Errorf("rental_building_id", "rental building does not exist"))
		}
	}

	if err := s.payments.Create(ctx, p); err != nil {
		log.Error().Err(err).Msg("Failed to create payment")
		return nil, err
	}
	monitoring.EntitiesCreated.WithLabelValues("payment").Inc()

	if p.Overdue(model.DateOf(time.Now())) {
		monitoring.OverduePaymentAlert(p.ID, map[string]string{
			"payment_period": p.PaymentPeriod,
			"due_date":       p.DueDate.String(),
		})
	}
	return p, nil
}

// Get returns a payment by ID.
func (s *PaymentService) Get(ctx context.Context, id int64) (*model.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns all payments.
func (s *PaymentService) List(ctx context.Context) ([]model.Payment, error) {
	return s.payments.List(ctx)
}

// Update applies the input through the validated setters on a staged
// copy and commits it in one write.
func (s *PaymentService) Update(ctx context.Context, id int64, in PaymentInput) (*model.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	staged := *p
	if err := s.apply(&staged, in); err != nil {
		return nil, reject("payment", err)
	}
	if err := staged.Validate(); err != nil {
		return nil, reject("payment", err)
	}

	if err := s.payments.Update(ctx, &staged); err != nil {
		log.Error().Err(err).Msg("Failed to update payment")
		return nil, err
	}
	return &staged, nil
}

// Delete removes a payment.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.payments.Delete(ctx, id)
}
