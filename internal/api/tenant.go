package api

import (
	"net/http"

	"github.com/teresa-solution/rental-management-service/internal/service"
	"github.com/teresa-solution/rental-management-service/internal/view"
)

type tenantRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Telephone  string `json:"telephone" validate:"required"`
	Occupation string `json:"occupation" validate:"required"`
	LandlordID *int64 `json:"landlord_id"`
}

func (req tenantRequest) input() service.TenantInput {
	return service.TenantInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Telephone:  req.Telephone,
		Occupation: req.Occupation,
		LandlordID: req.LandlordID,
	}
}

// CreateTenant handles POST /api/tenants.
func (a *API) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req tenantRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	tenant, err := a.tenants.Create(r.Context(), req.input())
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(tenant, view.TenantWithBuildings)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, projected)
}

// ListTenants handles GET /api/tenants.
func (a *API) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.tenants.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, tenants)
}

// GetTenant handles GET /api/tenants/{id} with the tenant-with-buildings
// view.
func (a *API) GetTenant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	tenant, err := a.tenants.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(tenant, view.TenantWithBuildings)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projected)
}

// UpdateTenant handles PUT /api/tenants/{id}.
func (a *API) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	var req tenantRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	updated, err := a.tenants.Update(r.Context(), id, req.input())
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(updated, view.TenantWithBuildings)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projected)
}

// DeleteTenant handles DELETE /api/tenants/{id}. Buildings rented by the
// tenant survive the delete.
func (a *API) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := a.tenants.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
