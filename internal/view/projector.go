// Package view produces the named JSON projections returned by the API.
// Every view whitelists, per relationship, the exact field subset exposed
// on the nested entity; nested entities never carry their own relations
// back up, which is what keeps the output cycle-free. The projections are
// the wire contract: changing a whitelist changes the API.
package view

import (
	"fmt"

	"github.com/teresa-solution/rental-management-service/internal/model"
)

// View names accepted by Project.
const (
	LandlordFull        = "landlord-full"
	TenantWithBuildings = "tenant-with-buildings"
	BuildingFull        = "building-full"
	PropertyTypeFull    = "property-type-full"
)

// Project renders an entity under the named view. The entity must be the
// pointer type matching the view, with whatever relations the view shows
// already loaded.
func Project(entity any, name string) (map[string]any, error) {
	switch name {
	case LandlordFull:
		l, ok := entity.(*model.Landlord)
		if !ok {
			return nil, fmt.Errorf("view %s: want *model.Landlord, got %T", name, entity)
		}
		return landlordFull(l), nil
	case TenantWithBuildings:
		t, ok := entity.(*model.Tenant)
		if !ok {
			return nil, fmt.Errorf("view %s: want *model.Tenant, got %T", name, entity)
		}
		return tenantWithBuildings(t), nil
	case BuildingFull:
		b, ok := entity.(*model.RentalBuilding)
		if !ok {
			return nil, fmt.Errorf("view %s: want *model.RentalBuilding, got %T", name, entity)
		}
		return buildingFull(b), nil
	case PropertyTypeFull:
		p, ok := entity.(*model.PropertyType)
		if !ok {
			return nil, fmt.Errorf("view %s: want *model.PropertyType, got %T", name, entity)
		}
		return propertyTypeFull(p), nil
	default:
		return nil, fmt.Errorf("unknown view %q", name)
	}
}

// landlordFull: id, username, tenant summaries, building summaries with
// payments, property type summaries. PasswordHash is never emitted.
func landlordFull(l *model.Landlord) map[string]any {
	tenants := make([]map[string]any, 0, len(l.Tenants))
	for i := range l.Tenants {
		tenants = append(tenants, tenantSummary(&l.Tenants[i]))
	}
	buildings := make([]map[string]any, 0, len(l.RentalBuildings))
	for i := range l.RentalBuildings {
		buildings = append(buildings, buildingSummary(&l.RentalBuildings[i], true))
	}
	types := make([]map[string]any, 0, len(l.PropertyTypes))
	for i := range l.PropertyTypes {
		types = append(types, propertyTypeSummary(&l.PropertyTypes[i]))
	}
	return map[string]any{
		"id":               l.ID,
		"username":         l.Username,
		"tenants":          tenants,
		"rental_buildings": buildings,
		"property_types":   types,
	}
}

func tenantWithBuildings(t *model.Tenant) map[string]any {
	out := tenantSummary(t)
	buildings := make([]map[string]any, 0, len(t.RentalBuildings))
	for i := range t.RentalBuildings {
		buildings = append(buildings, buildingSummary(&t.RentalBuildings[i], false))
	}
	out["rental_buildings"] = buildings
	return out
}

func buildingFull(b *model.RentalBuilding) map[string]any {
	out := buildingSummary(b, true)
	if b.Landlord != nil {
		out["landlord"] = landlordSummary(b.Landlord)
	}
	if b.Tenant != nil {
		out["tenant"] = tenantSummary(b.Tenant)
	}
	if b.PropertyType != nil {
		out["property_type"] = propertyTypeSummary(b.PropertyType)
	}
	return out
}

func propertyTypeFull(p *model.PropertyType) map[string]any {
	out := propertyTypeSummary(p)
	buildings := make([]map[string]any, 0, len(p.RentalBuildings))
	for i := range p.RentalBuildings {
		buildings = append(buildings, buildingSummary(&p.RentalBuildings[i], false))
	}
	out["rental_buildings"] = buildings
	return out
}

// Summary shapes. These are the per-relationship whitelists; none of them
// re-expand relations of their own beyond what is listed here.

func landlordSummary(l *model.Landlord) map[string]any {
	return map[string]any{
		"id":       l.ID,
		"username": l.Username,
	}
}

func tenantSummary(t *model.Tenant) map[string]any {
	return map[string]any{
		"id":         t.ID,
		"first_name": t.FirstName,
		"last_name":  t.LastName,
		"telephone":  t.Telephone,
		"occupation": t.Occupation,
	}
}

func buildingSummary(b *model.RentalBuilding, withPayments bool) map[string]any {
	out := map[string]any{
		"id":            b.ID,
		"address":       b.Address,
		"starting_date": b.StartingDate.String(),
		"ending_date":   b.EndingDate.String(),
	}
	if withPayments {
		payments := make([]map[string]any, 0, len(b.Payments))
		for i := range b.Payments {
			payments = append(payments, paymentView(&b.Payments[i]))
		}
		out["payments"] = payments
	}
	return out
}

func propertyTypeSummary(p *model.PropertyType) map[string]any {
	return map[string]any{
		"id":                 p.ID,
		"property_type_name": p.PropertyTypeName,
	}
}

func paymentView(p *model.Payment) map[string]any {
	return map[string]any{
		"id":             p.ID,
		"monthly_price":  p.MonthlyPrice,
		"price":          p.Price,
		"payment_status": p.PaymentStatus,
		"payment_date":   p.PaymentDate.String(),
		"due_date":       p.DueDate.String(),
		"payment_period": p.PaymentPeriod,
	}
}
