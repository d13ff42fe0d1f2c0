package api

import (
	"net/http"

	"github.com/teresa-solution/rental-management-service/internal/view"
)

type propertyTypeRequest struct {
	PropertyTypeName string `json:"property_type_name" validate:"required"`
}

// CreatePropertyType handles POST /api/property_types.
func (a *API) CreatePropertyType(w http.ResponseWriter, r *http.Request) {
	var req propertyTypeRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	propertyType, err := a.propertyTypes.Create(r.Context(), req.PropertyTypeName)
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(propertyType, view.PropertyTypeFull)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, projected)
}

// ListPropertyTypes handles GET /api/property_types.
func (a *API) ListPropertyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := a.propertyTypes.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, types)
}

// GetPropertyType handles GET /api/property_types/{id} with the
// property-type-full view.
func (a *API) GetPropertyType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	propertyType, err := a.propertyTypes.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(propertyType, view.PropertyTypeFull)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projected)
}

// UpdatePropertyType handles PUT /api/property_types/{id}.
func (a *API) UpdatePropertyType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	var req propertyTypeRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	updated, err := a.propertyTypes.Update(r.Context(), id, req.PropertyTypeName)
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(updated, view.PropertyTypeFull)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projected)
}

// DeletePropertyType handles DELETE /api/property_types/{id}. Buildings
// of this type survive with the reference cleared.
func (a *API) DeletePropertyType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := a.propertyTypes.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
