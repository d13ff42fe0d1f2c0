package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teresa-solution/rental-management-service/internal/model"
)

// openTestStore connects to the database named by TEST_DATABASE_DSN, or
// skips the test when the variable is unset.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set; skipping database tests")
	}
	s, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// unique suffixes keep reruns against the same database from tripping
// the unique constraints.
func unique(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestLandlordRepository(t *testing.T) {
	s := openTestStore(t)
	repo := NewLandlordRepository(s)
	ctx := context.Background()

	l := &model.Landlord{Username: unique("JohnDoe"), PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, l))
	require.NotZero(t, l.ID)
	t.Cleanup(func() { repo.Delete(ctx, l.ID) })

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, l.Username, got.Username)
	assert.Equal(t, "hash", got.PasswordHash)

	byName, err := repo.GetByUsername(ctx, l.Username)
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, l.ID, byName.ID)

	missing, err := repo.GetByID(ctx, -1)
	require.NoError(t, err)
	assert.Nil(t, missing)

	l.PasswordHash = "newhash"
	require.NoError(t, repo.Update(ctx, l))
	got, err = repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", got.PasswordHash)

	require.NoError(t, repo.Delete(ctx, l.ID))
	assert.Error(t, repo.Delete(ctx, l.ID))
}

func TestLandlordPropertyTypeAssociation(t *testing.T) {
	s := openTestStore(t)
	landlords := NewLandlordRepository(s)
	types := NewPropertyTypeRepository(s)
	ctx := context.Background()

	l := &model.Landlord{Username: unique("JohnDoe"), PasswordHash: "hash"}
	require.NoError(t, landlords.Create(ctx, l))
	t.Cleanup(func() { landlords.Delete(ctx, l.ID) })

	p := &model.PropertyType{PropertyTypeName: "Apartment"}
	require.NoError(t, types.Create(ctx, p))
	t.Cleanup(func() { types.Delete(ctx, p.ID) })

	require.NoError(t, landlords.AssociatePropertyType(ctx, l.ID, p.ID))
	// ON CONFLICT DO NOTHING makes this idempotent.
	require.NoError(t, landlords.AssociatePropertyType(ctx, l.ID, p.ID))

	linked, err := landlords.PropertyTypes(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "Apartment", linked[0].PropertyTypeName)

	require.NoError(t, landlords.DissociatePropertyType(ctx, l.ID, p.ID))
	linked, err = landlords.PropertyTypes(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)
}

func TestBuildingRepository(t *testing.T) {
	s := openTestStore(t)
	landlords := NewLandlordRepository(s)
	buildings := NewBuildingRepository(s)
	ctx := context.Background()

	l := &model.Landlord{Username: unique("JohnDoe"), PasswordHash: "hash"}
	require.NoError(t, landlords.Create(ctx, l))
	t.Cleanup(func() { landlords.Delete(ctx, l.ID) })

	b := &model.RentalBuilding{
		Address:      unique("123 Main St"),
		StartingDate: model.NewDate(2024, time.January, 1),
		EndingDate:   model.NewDate(2025, time.January, 1),
		LandlordID:   &l.ID,
	}
	require.NoError(t, buildings.Create(ctx, b))
	t.Cleanup(func() { buildings.Delete(ctx, b.ID) })

	got, err := buildings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.Address, got.Address)
	assert.Equal(t, "2024-01-01", got.StartingDate.String())
	require.NotNil(t, got.LandlordID)
	assert.Equal(t, l.ID, *got.LandlordID)
	assert.Nil(t, got.TenantID)

	byAddress, err := buildings.GetByAddress(ctx, b.Address)
	require.NoError(t, err)
	require.NotNil(t, byAddress)
	assert.Equal(t, b.ID, byAddress.ID)

	owned, err := buildings.ListByLandlord(ctx, l.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestBuildingCascadesFromSchema(t *testing.T) {
	s := openTestStore(t)
	landlords := NewLandlordRepository(s)
	buildings := NewBuildingRepository(s)
	payments := NewPaymentRepository(s)
	ctx := context.Background()

	l := &model.Landlord{Username: unique("JohnDoe"), PasswordHash: "hash"}
	require.NoError(t, landlords.Create(ctx, l))

	b := &model.RentalBuilding{
		Address:      unique("123 Main St"),
		StartingDate: model.NewDate(2024, time.January, 1),
		EndingDate:   model.NewDate(2025, time.January, 1),
		LandlordID:   &l.ID,
	}
	require.NoError(t, buildings.Create(ctx, b))

	p := &model.Payment{
		MonthlyPrice: 1200, Price: 1200, PaymentStatus: true,
		PaymentDate:      model.NewDate(2024, time.February, 1),
		DueDate:          model.NewDate(2024, time.February, 1),
		PaymentPeriod:    "02-2024",
		RentalBuildingID: &b.ID,
	}
	require.NoError(t, payments.Create(ctx, p))

	// Deleting the landlord removes the building and its payment through
	// the foreign key constraints.
	require.NoError(t, landlords.Delete(ctx, l.ID))

	gone, err := buildings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	gonePayment, err := payments.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, gonePayment)
}

func TestTenantRepository(t *testing.T) {
	s := openTestStore(t)
	tenants := NewTenantRepository(s)
	ctx := context.Background()

	tn := &model.Tenant{
		FirstName: "Alice", LastName: "Walker",
		Telephone: "123-456-7890", Occupation: "Engineer",
	}
	require.NoError(t, tenants.Create(ctx, tn))
	t.Cleanup(func() { tenants.Delete(ctx, tn.ID) })

	got, err := tenants.GetByID(ctx, tn.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Nil(t, got.LandlordID)

	got.Occupation = "Architect"
	require.NoError(t, tenants.Update(ctx, got))
	updated, err := tenants.GetByID(ctx, tn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Architect", updated.Occupation)
}

func TestPaymentRepository(t *testing.T) {
	s := openTestStore(t)
	payments := NewPaymentRepository(s)
	ctx := context.Background()

	p := &model.Payment{
		MonthlyPrice: 1400, Price: 1400, PaymentStatus: false,
		PaymentDate:   model.NewDate(2024, time.February, 10),
		DueDate:       model.NewDate(2024, time.February, 5),
		PaymentPeriod: "02-2024",
	}
	require.NoError(t, payments.Create(ctx, p))
	t.Cleanup(func() { payments.Delete(ctx, p.ID) })

	got, err := payments.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.PaymentStatus)
	assert.Equal(t, "02-2024", got.PaymentPeriod)
	assert.Equal(t, "2024-02-05", got.DueDate.String())
	assert.Nil(t, got.RentalBuildingID)
}
