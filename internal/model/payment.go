package model

import "github.com/teresa-solution/rental-management-service/internal/validate"

// Payment represents the payments table. Payments are owned by their
// rental building and removed with it.
type Payment struct {
	ID            int64  `json:"id"`
	MonthlyPrice  int    `json:"monthly_price"`
	Price         int    `json:"price"`
	PaymentStatus bool   `json:"payment_status"`
	PaymentDate   Date   `json:"payment_date"`
	DueDate       Date   `json:"due_date"`
	PaymentPeriod string `json:"payment_period"`

	RentalBuildingID *int64 `json:"rental_building_id,omitempty"`
}

// SetPrice validates and assigns the paid amount.
func (p *Payment) SetPrice(v int) error {
	if err := validate.Price("price", v); err != nil {
		return err
	}
	p.Price = v
	return nil
}

// SetMonthlyPrice validates and assigns the contracted monthly amount.
func (p *Payment) SetMonthlyPrice(v int) error {
	if err := validate.Price("monthly_price", v); err != nil {
		return err
	}
	p.MonthlyPrice = v
	return nil
}

// SetPaymentPeriod validates and assigns the billing cycle label.
func (p *Payment) SetPaymentPeriod(v string) error {
	if err := validate.PaymentPeriod(v); err != nil {
		return err
	}
	p.PaymentPeriod = v
	return nil
}

// Overdue reports whether the payment is unpaid past its due date, as of
// the given date.
func (p *Payment) Overdue(today Date) bool {
	return !p.PaymentStatus && !p.DueDate.IsZero() && today.After(p.DueDate)
}

// Validate re-checks all staged fields before persisting. PaymentStatus
// is a plain bool here; its required-ness is enforced at the API boundary
// where absence is distinguishable from false.
func (p *Payment) Validate() error {
	if err := validate.Price("monthly_price", p.MonthlyPrice); err != nil {
		return err
	}
	if err := validate.Price("price", p.Price); err != nil {
		return err
	}
	if p.PaymentDate.IsZero() {
		return validate.Errorf("payment_date", "payment_date is required")
	}
	if p.DueDate.IsZero() {
		return validate.Errorf("due_date", "due_date is required")
	}
	return validate.PaymentPeriod(p.PaymentPeriod)
}
