package service

import (
	"context"
	"database/sql"
	"sort"

	"github.com/teresa-solution/rental-management-service/internal/model"
)

// In-memory repository fakes backing the service tests. They share one
// memDB so cross-entity lookups (ListByLandlord, joins) see the same
// data, and they mirror the postgres repositories' contract: missing
// rows are (nil, nil) on reads and sql.ErrNoRows on writes.

type memDB struct {
	seq           int64
	landlords     map[int64]model.Landlord
	tenants       map[int64]model.Tenant
	buildings     map[int64]model.RentalBuilding
	propertyTypes map[int64]model.PropertyType
	payments      map[int64]model.Payment
	joins         map[[2]int64]bool
}

func newMemDB() *memDB {
	return &memDB{
		landlords:     map[int64]model.Landlord{},
		tenants:       map[int64]model.Tenant{},
		buildings:     map[int64]model.RentalBuilding{},
		propertyTypes: map[int64]model.PropertyType{},
		payments:      map[int64]model.Payment{},
		joins:         map[[2]int64]bool{},
	}
}

func (d *memDB) next() int64 {
	d.seq++
	return d.seq
}

type memLandlords struct{ db *memDB }

func (m *memLandlords) Create(_ context.Context, l *model.Landlord) error {
	l.ID = m.db.next()
	m.db.landlords[l.ID] = *l
	return nil
}

func (m *memLandlords) GetByID(_ context.Context, id int64) (*model.Landlord, error) {
	l, ok := m.db.landlords[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (m *memLandlords) GetByUsername(_ context.Context, username string) (*model.Landlord, error) {
	for _, l := range m.db.landlords {
		if l.Username == username {
			out := l
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memLandlords) List(_ context.Context) ([]model.Landlord, error) {
	out := make([]model.Landlord, 0, len(m.db.landlords))
	for _, l := range m.db.landlords {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memLandlords) Update(_ context.Context, l *model.Landlord) error {
	if _, ok := m.db.landlords[l.ID]; !ok {
		return sql.ErrNoRows
	}
	m.db.landlords[l.ID] = *l
	return nil
}

func (m *memLandlords) Delete(_ context.Context, id int64) error {
	if _, ok := m.db.landlords[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.db.landlords, id)
	for k := range m.db.joins {
		if k[0] == id {
			delete(m.db.joins, k)
		}
	}
	return nil
}

func (m *memLandlords) AssociatePropertyType(_ context.Context, landlordID, propertyTypeID int64) error {
	m.db.joins[[2]int64{landlordID, propertyTypeID}] = true
	return nil
}

func (m *memLandlords) DissociatePropertyType(_ context.Context, landlordID, propertyTypeID int64) error {
	delete(m.db.joins, [2]int64{landlordID, propertyTypeID})
	return nil
}

func (m *memLandlords) PropertyTypes(_ context.Context, landlordID int64) ([]model.PropertyType, error) {
	var out []model.PropertyType
	for k := range m.db.joins {
		if k[0] == landlordID {
			if p, ok := m.db.propertyTypes[k[1]]; ok {
				out = append(out, p)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memTenants struct{ db *memDB }

func (m *memTenants) Create(_ context.Context, t *model.Tenant) error {
	t.ID = m.db.next()
	m.db.tenants[t.ID] = *t
	return nil
}

func (m *memTenants) GetByID(_ context.Context, id int64) (*model.Tenant, error) {
	t, ok := m.db.tenants[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (m *memTenants) List(_ context.Context) ([]model.Tenant, error) {
	out := make([]model.Tenant, 0, len(m.db.tenants))
	for _, t := range m.db.tenants {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memTenants) ListByLandlord(_ context.Context, landlordID int64) ([]model.Tenant, error) {
	var out []model.Tenant
	for _, t := range m.db.tenants {
		if t.LandlordID != nil && *t.LandlordID == landlordID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memTenants) Update(_ context.Context, t *model.Tenant) error {
	if _, ok := m.db.tenants[t.ID]; !ok {
		return sql.ErrNoRows
	}
	m.db.tenants[t.ID] = *t
	return nil
}

func (m *memTenants) Delete(_ context.Context, id int64) error {
	if _, ok := m.db.tenants[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.db.tenants, id)
	return nil
}

type memBuildings struct{ db *memDB }

func (m *memBuildings) Create(_ context.Context, b *model.RentalBuilding) error {
	b.ID = m.db.next()
	m.db.buildings[b.ID] = *b
	return nil
}

func (m *memBuildings) GetByID(_ context.Context, id int64) (*model.RentalBuilding, error) {
	b, ok := m.db.buildings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (m *memBuildings) GetByAddress(_ context.Context, address string) (*model.RentalBuilding, error) {
	for _, b := range m.db.buildings {
		if b.Address == address {
			out := b
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memBuildings) List(_ context.Context) ([]model.RentalBuilding, error) {
	out := make([]model.RentalBuilding, 0, len(m.db.buildings))
	for _, b := range m.db.buildings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memBuildings) listWhere(match func(model.RentalBuilding) bool) []model.RentalBuilding {
	var out []model.RentalBuilding
	for _, b := range m.db.buildings {
		if match(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memBuildings) ListByLandlord(_ context.Context, landlordID int64) ([]model.RentalBuilding, error) {
	return m.listWhere(func(b model.RentalBuilding) bool {
		return b.LandlordID != nil && *b.LandlordID == landlordID
	}), nil
}

func (m *memBuildings) ListByTenant(_ context.Context, tenantID int64) ([]model.RentalBuilding, error) {
	return m.listWhere(func(b model.RentalBuilding) bool {
		return b.TenantID != nil && *b.TenantID == tenantID
	}), nil
}

func (m *memBuildings) ListByPropertyType(_ context.Context, propertyTypeID int64) ([]model.RentalBuilding, error) {
	return m.listWhere(func(b model.RentalBuilding) bool {
		return b.PropertyTypeID != nil && *b.PropertyTypeID == propertyTypeID
	}), nil
}

func (m *memBuildings) Update(_ context.Context, b *model.RentalBuilding) error {
	if _, ok := m.db.buildings[b.ID]; !ok {
		return sql.ErrNoRows
	}
	m.db.buildings[b.ID] = *b
	return nil
}

func (m *memBuildings) Delete(_ context.Context, id int64) error {
	if _, ok := m.db.buildings[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.db.buildings, id)
	return nil
}

func (m *memBuildings) ClearTenant(_ context.Context, tenantID int64) error {
	for id, b := range m.db.buildings {
		if b.TenantID != nil && *b.TenantID == tenantID {
			b.TenantID = nil
			m.db.buildings[id] = b
		}
	}
	return nil
}

func (m *memBuildings) ClearPropertyType(_ context.Context, propertyTypeID int64) error {
	for id, b := range m.db.buildings {
		if b.PropertyTypeID != nil && *b.PropertyTypeID == propertyTypeID {
			b.PropertyTypeID = nil
			m.db.buildings[id] = b
		}
	}
	return nil
}

type memPropertyTypes struct{ db *memDB }

func (m *memPropertyTypes) Create(_ context.Context, p *model.PropertyType) error {
	p.ID = m.db.next()
	m.db.propertyTypes[p.ID] = *p
	return nil
}

func (m *memPropertyTypes) GetByID(_ context.Context, id int64) (*model.PropertyType, error) {
	p, ok := m.db.propertyTypes[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memPropertyTypes) List(_ context.Context) ([]model.PropertyType, error) {
	out := make([]model.PropertyType, 0, len(m.db.propertyTypes))
	for _, p := range m.db.propertyTypes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memPropertyTypes) Update(_ context.Context, p *model.PropertyType) error {
	if _, ok := m.db.propertyTypes[p.ID]; !ok {
		return sql.ErrNoRows
	}
	m.db.propertyTypes[p.ID] = *p
	return nil
}

func (m *memPropertyTypes) Delete(_ context.Context, id int64) error {
	if _, ok := m.db.propertyTypes[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.db.propertyTypes, id)
	for k := range m.db.joins {
		if k[1] == id {
			delete(m.db.joins, k)
		}
	}
	return nil
}

type memPayments struct{ db *memDB }

func (m *memPayments) Create(_ context.Context, p *model.Payment) error {
	p.ID = m.db.next()
	m.db.payments[p.ID] = *p
	return nil
}

func (m *memPayments) GetByID(_ context.Context, id int64) (*model.Payment, error) {
	p, ok := m.db.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memPayments) List(_ context.Context) ([]model.Payment, error) {
	out := make([]model.Payment, 0, len(m.db.payments))
	for _, p := range m.db.payments {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memPayments) ListByBuilding(_ context.Context, buildingID int64) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.db.payments {
		if p.RentalBuildingID != nil && *p.RentalBuildingID == buildingID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memPayments) Update(_ context.Context, p *model.Payment) error {
	if _, ok := m.db.payments[p.ID]; !ok {
		return sql.ErrNoRows
	}
	m.db.payments[p.ID] = *p
	return nil
}

func (m *memPayments) Delete(_ context.Context, id int64) error {
	if _, ok := m.db.payments[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.db.payments, id)
	return nil
}
