package api

import (
	"net/http"

	"github.com/teresa-solution/rental-management-service/internal/service"
	"github.com/teresa-solution/rental-management-service/internal/view"
)

type buildingRequest struct {
	Address        string `json:"address" validate:"required"`
	StartingDate   string `json:"starting_date" validate:"required"`
	EndingDate     string `json:"ending_date" validate:"required"`
	LandlordID     *int64 `json:"landlord_id"`
	TenantID       *int64 `json:"tenant_id"`
	PropertyTypeID *int64 `json:"property_type_id"`
}

func (req buildingRequest) input() (service.BuildingInput, error) {
	starting, err := parseDate("starting_date", req.StartingDate)
	if err != nil {
		return service.BuildingInput{}, err
	}
	ending, err := parseDate("ending_date", req.EndingDate)
	if err != nil {
		return service.BuildingInput{}, err
	}
	return service.BuildingInput{
		Address:        req.Address,
		StartingDate:   starting,
		EndingDate:     ending,
		LandlordID:     req.LandlordID,
		TenantID:       req.TenantID,
		PropertyTypeID: req.PropertyTypeID,
	}, nil
}

// CreateBuilding handles POST /api/rental_buildings.
func (a *API) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	var req buildingRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	in, err := req.input()
	if err != nil {
		WriteError(w, err)
		return
	}
	building, err := a.buildings.Create(r.Context(), in)
	if err != nil {
		WriteError(w, err)
		return
	}
	full, err := a.buildings.Get(r.Context(), building.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(full, view.BuildingFull)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, projected)
}

// ListBuildings handles GET /api/rental_buildings.
func (a *API) ListBuildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := a.buildings.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, buildings)
}

// GetBuilding handles GET /api/rental_buildings/{id} with the
// building-full view.
func (a *API) GetBuilding(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	building, err := a.buildings.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(building, view.BuildingFull)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projected)
}

// UpdateBuilding handles PUT /api/rental_buildings/{id}.
func (a *API) UpdateBuilding(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	var req buildingRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	in, err := req.input()
	if err != nil {
		WriteError(w, err)
		return
	}
	updated, err := a.buildings.Update(r.Context(), id, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	full, err := a.buildings.Get(r.Context(), updated.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	projected, err := view.Project(full, view.BuildingFull)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projected)
}

// DeleteBuilding handles DELETE /api/rental_buildings/{id}. Payments of
// the building are deleted with it.
func (a *API) DeleteBuilding(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := a.buildings.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
