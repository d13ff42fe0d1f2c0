package api

import (
	"net/http"

	"github.com/teresa-solution/rental-management-service/internal/service"
)

type paymentRequest struct {
	MonthlyPrice     int    `json:"monthly_price" validate:"required"`
	Price            int    `json:"price" validate:"required"`
	PaymentStatus    *bool  `json:"payment_status" validate:"required"`
	PaymentDate      string `json:"payment_date" validate:"required"`
	DueDate          string `json:"due_date" validate:"required"`
	PaymentPeriod    string `json:"payment_period" validate:"required"`
	RentalBuildingID *int64 `json:"rental_building_id"`
}

func (req paymentRequest) input() (service.PaymentInput, error) {
	paymentDate, err := parseDate("payment_date", req.PaymentDate)
	if err != nil {
		return service.PaymentInput{}, err
	}
	dueDate, err := parseDate("due_date", req.DueDate)
	if err != nil {
		return service.PaymentInput{}, err
	}
	status := false
	if req.PaymentStatus != nil {
		status = *req.PaymentStatus
	}
	return service.PaymentInput{
		MonthlyPrice:     req.MonthlyPrice,
		Price:            req.Price,
		PaymentStatus:    status,
		PaymentDate:      paymentDate,
		DueDate:          dueDate,
		PaymentPeriod:    req.PaymentPeriod,
		RentalBuildingID: req.RentalBuildingID,
	}, nil
}

// CreatePayment handles POST /api/payments.
func (a *API) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	in, err := req.input()
	if err != nil {
		WriteError(w, err)
		return
	}
	payment, err := a.payments.Create(r.Context(), in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, payment)
}

// ListPayments handles GET /api/payments.
func (a *API) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := a.payments.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, payments)
}

// GetPayment handles GET /api/payments/{id}.
func (a *API) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	payment, err := a.payments.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, payment)
}

// UpdatePayment handles PUT /api/payments/{id}.
func (a *API) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	var req paymentRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	in, err := req.input()
	if err != nil {
		WriteError(w, err)
		return
	}
	updated, err := a.payments.Update(r.Context(), id, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}

// DeletePayment handles DELETE /api/payments/{id}.
func (a *API) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := a.payments.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
