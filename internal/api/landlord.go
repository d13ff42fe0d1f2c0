package api

import (
	"net/http"

	"github.com/teresa-solution/rental-management-service/internal/service"
	"github.com/teresa-solution/rental-management-service/internal/view"
)

type landlordUpdateRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// ListLandlords handles GET /api/landlords.
func (a *API) ListLandlords(w http.ResponseWriter, r *http.Request) {
	landlords, err := a.landlords.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(landlords))
	for i := range landlords {
		out = append(out, map[string]any{
			"id":       landlords[i].ID,
			"username": landlords[i].Username,
		})
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetLandlord handles GET /api/landlords/{id} with the landlord-full view.
func (a *API) GetLandlord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	landlord, err := a.landlords.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(landlord, view.LandlordFull)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projected)
}

// UpdateLandlord handles PATCH /api/landlords/{id}.
func (a *API) UpdateLandlord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	var req landlordUpdateRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	updated, err := a.landlords.Update(r.Context(), id, service.LandlordUpdate{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	full, err := a.landlords.Get(r.Context(), updated.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(full, view.LandlordFull)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projected)
}

// DeleteLandlord handles DELETE /api/landlords/{id}.
func (a *API) DeleteLandlord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := a.landlords.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AssociatePropertyType handles
// POST /api/landlords/{id}/property_types/{type_id}.
func (a *API) AssociatePropertyType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	typeID, err := pathID(r, "type_id")
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := a.landlords.AssociatePropertyType(r.Context(), id, typeID); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Response{Status: StatusOK})
}

// DissociatePropertyType handles
// DELETE /api/landlords/{id}/property_types/{type_id}.
func (a *API) DissociatePropertyType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	typeID, err := pathID(r, "type_id")
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := a.landlords.DissociatePropertyType(r.Context(), id, typeID); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Response{Status: StatusOK})
}
