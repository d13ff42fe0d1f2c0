// Package api is the HTTP JSON surface of the rental management backend.
// Handlers decode request payloads, check their shape with validator
// tags, delegate the domain rules to the services, and render results
// through the named views. Everything except signup and login requires a
// landlord session cookie.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teresa-solution/rental-management-service/internal/model"
	"github.com/teresa-solution/rental-management-service/internal/monitoring"
	"github.com/teresa-solution/rental-management-service/internal/service"
	"github.com/teresa-solution/rental-management-service/internal/session"
	"github.com/teresa-solution/rental-management-service/internal/validate"
)

const sessionCookie = "session"

// API bundles the services behind the HTTP routes.
type API struct {
	landlords     *service.LandlordService
	tenants       *service.TenantService
	buildings     *service.BuildingService
	propertyTypes *service.PropertyTypeService
	payments      *service.PaymentService
	sessions      *session.Store
	payload       *validator.Validate
}

func New(
	landlords *service.LandlordService,
	tenants *service.TenantService,
	buildings *service.BuildingService,
	propertyTypes *service.PropertyTypeService,
	payments *service.PaymentService,
	sessions *session.Store,
) *API {
	return &API{
		landlords:     landlords,
		tenants:       tenants,
		buildings:     buildings,
		propertyTypes: propertyTypes,
		payments:      payments,
		sessions:      sessions,
		payload:       validator.New(),
	}
}

// Router builds the route table.
func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/signup", a.Signup)
	mux.HandleFunc("POST /api/login", a.Login)
	mux.HandleFunc("DELETE /api/logout", a.requireSession(a.Logout))
	mux.HandleFunc("GET /api/check_session", a.requireSession(a.CheckSession))

	mux.HandleFunc("GET /api/landlords", a.requireSession(a.ListLandlords))
	mux.HandleFunc("GET /api/landlords/{id}", a.requireSession(a.GetLandlord))
	mux.HandleFunc("PATCH /api/landlords/{id}", a.requireSession(a.UpdateLandlord))
	mux.HandleFunc("DELETE /api/landlords/{id}", a.requireSession(a.DeleteLandlord))
	mux.HandleFunc("POST /api/landlords/{id}/property_types/{type_id}", a.requireSession(a.AssociatePropertyType))
	mux.HandleFunc("DELETE /api/landlords/{id}/property_types/{type_id}", a.requireSession(a.DissociatePropertyType))

	mux.HandleFunc("POST /api/tenants", a.requireSession(a.CreateTenant))
	mux.HandleFunc("GET /api/tenants", a.requireSession(a.ListTenants))
	mux.HandleFunc("GET /api/tenants/{id}", a.requireSession(a.GetTenant))
	mux.HandleFunc("PUT /api/tenants/{id}", a.requireSession(a.UpdateTenant))
	mux.HandleFunc("DELETE /api/tenants/{id}", a.requireSession(a.DeleteTenant))

	mux.HandleFunc("POST /api/rental_buildings", a.requireSession(a.CreateBuilding))
	mux.HandleFunc("GET /api/rental_buildings", a.requireSession(a.ListBuildings))
	mux.HandleFunc("GET /api/rental_buildings/{id}", a.requireSession(a.GetBuilding))
	mux.HandleFunc("PUT /api/rental_buildings/{id}", a.requireSession(a.UpdateBuilding))
	mux.HandleFunc("DELETE /api/rental_buildings/{id}", a.requireSession(a.DeleteBuilding))

	mux.HandleFunc("POST /api/property_types", a.requireSession(a.CreatePropertyType))
	mux.HandleFunc("GET /api/property_types", a.requireSession(a.ListPropertyTypes))
	mux.HandleFunc("GET /api/property_types/{id}", a.requireSession(a.GetPropertyType))
	mux.HandleFunc("PUT /api/property_types/{id}", a.requireSession(a.UpdatePropertyType))
	mux.HandleFunc("DELETE /api/property_types/{id}", a.requireSession(a.DeletePropertyType))

	mux.HandleFunc("POST /api/payments", a.requireSession(a.CreatePayment))
	mux.HandleFunc("GET /api/payments", a.requireSession(a.ListPayments))
	mux.HandleFunc("GET /api/payments/{id}", a.requireSession(a.GetPayment))
	mux.HandleFunc("PUT /api/payments/{id}", a.requireSession(a.UpdatePayment))
	mux.HandleFunc("DELETE /api/payments/{id}", a.requireSession(a.DeletePayment))

	return timed(mux)
}

// timed records request durations.
func timed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		monitoring.RequestDuration.Observe(time.Since(start).Seconds())
	})
}

type contextKey string

const landlordIDKey contextKey = "landlord_id"

// requireSession resolves the session cookie to a landlord id and stores
// it on the request context; unauthenticated requests get a 401.
func (a *API) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			WriteJSON(w, http.StatusUnauthorized, GeneralError(errors.New("not logged in")))
			return
		}
		landlordID, err := a.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			WriteJSON(w, http.StatusUnauthorized, GeneralError(errors.New("not logged in")))
			return
		}
		ctx := context.WithValue(r.Context(), landlordIDKey, landlordID)
		next(w, r.WithContext(ctx))
	}
}

func sessionLandlordID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(landlordIDKey).(int64)
	return id, ok
}

// decode reads a JSON body into dst and checks the validator tags.
func (a *API) decode(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return validate.Errorf("body", "request body is empty")
	}
	if err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		return validate.Errorf("body", "malformed request body")
	}
	if err := a.payload.Struct(dst); err != nil {
		errs := err.(validator.ValidationErrors)
		if len(errs) > 0 {
			return validate.Errorf(errs[0].Field(), "field %s is required", errs[0].Field())
		}
	}
	return nil
}

// pathID parses the {id} segment of the URL.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, validate.Errorf(name, "%s must be an integer", name)
	}
	return id, nil
}

// parseDate turns a YYYY-MM-DD payload string into a Date, reporting a
// ValidationError on the named field.
func parseDate(field, value string) (model.Date, error) {
	if value == "" {
		return model.Date{}, validate.Errorf(field, "%s is required", field)
	}
	d, err := model.ParseDate(value)
	if err != nil {
		return model.Date{}, validate.Errorf(field, "%s must be a valid date (YYYY-MM-DD)", field)
	}
	return d, nil
}
