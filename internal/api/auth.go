package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/teresa-solution/rental-management-service/internal/view"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (a *API) setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup registers a landlord and opens a session for it.
func (a *API) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	landlord, err := a.landlords.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	token, err := a.sessions.Create(r.Context(), landlord.ID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create session")
		WriteError(w, err)
		return
	}
	a.setSessionCookie(w, token, 86400)

	projected, err := view.Project(landlord, view.LandlordFull)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, projected)
}

// Login authenticates a landlord and opens a session.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := a.decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	landlord, err := a.landlords.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	token, err := a.sessions.Create(r.Context(), landlord.ID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create session")
		WriteError(w, err)
		return
	}
	a.setSessionCookie(w, token, 86400)

	full, err := a.landlords.Get(r.Context(), landlord.ID)
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

// Logout ends the current session.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := a.sessions.Delete(r.Context(), cookie.Value); err != nil {
			log.Error().Err(err).Msg("Failed to delete session")
		}
	}
	a.setSessionCookie(w, "", -1)
	WriteJSON(w, http.StatusOK, Response{Status: StatusOK})
}

// CheckSession returns the logged-in landlord for the current cookie.
func (a *API) CheckSession(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := sessionLandlordID(r)
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, GeneralError(errors.New("not logged in")))
		return
	}

	landlord, err := a.landlords.Get(r.Context(), landlordID)
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
