// Seed loads the sample data set: three property types, two landlords
// with associated types, a tenant and a rented building each, and one
// payment per building.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/teresa-solution/rental-management-service/internal/model"
	"github.com/teresa-solution/rental-management-service/internal/service"
	"github.com/teresa-solution/rental-management-service/internal/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var (
		dbHost = flag.String("db-host", "localhost", "Database host")
		dbPort = flag.Int("db-port", 5432, "Database port")
		dbUser = flag.String("db-user", "admin", "Database user")
		dbPass = flag.String("db-pass", "securepassword", "Database password")
		dbName = flag.String("db-name", "rental_registry", "Database name")
	)
	flag.Parse()

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		*dbHost, *dbPort, *dbUser, *dbPass, *dbName)

	db, err := store.Open(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	landlordRepo := store.NewLandlordRepository(db)
	tenantRepo := store.NewTenantRepository(db)
	buildingRepo := store.NewBuildingRepository(db)
	propertyTypeRepo := store.NewPropertyTypeRepository(db)
	paymentRepo := store.NewPaymentRepository(db)

	landlords := service.NewLandlordService(landlordRepo, tenantRepo, buildingRepo, paymentRepo)
	tenants := service.NewTenantService(tenantRepo, buildingRepo, landlordRepo)
	buildings := service.NewBuildingService(buildingRepo, paymentRepo, landlordRepo, tenantRepo, propertyTypeRepo)
	propertyTypes := service.NewPropertyTypeService(propertyTypeRepo, buildingRepo)
	payments := service.NewPaymentService(paymentRepo, buildingRepo)

	ctx := context.Background()
	log.Info().Msg("Starting seed...")

	apartment := mustPropertyType(ctx, propertyTypes, "Apartment")
	house := mustPropertyType(ctx, propertyTypes, "House")
	condo := mustPropertyType(ctx, propertyTypes, "Condo")
	log.Info().Msg("Created property types")

	john, err := landlords.Register(ctx, "JohnDoe", "Password123!")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create landlord")
	}
	jane, err := landlords.Register(ctx, "JaneSmith", "Password456!")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create landlord")
	}
	for _, assoc := range []struct{ landlordID, typeID int64 }{
		{john.ID, apartment.ID},
		{john.ID, house.ID},
		{jane.ID, condo.ID},
	} {
		if err := landlords.AssociatePropertyType(ctx, assoc.landlordID, assoc.typeID); err != nil {
			log.Fatal().Err(err).Msg("Failed to associate property type")
		}
	}
	log.Info().Msg("Created landlords")

	alice, err := tenants.Create(ctx, service.TenantInput{
		FirstName: "Alice", LastName: "Walker",
		Telephone: "123-456-7890", Occupation: "Engineer",
		LandlordID: &john.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create tenant")
	}
	bob, err := tenants.Create(ctx, service.TenantInput{
		FirstName: "Bob", LastName: "Johnson",
		Telephone: "987-654-3210", Occupation: "Designer",
		LandlordID: &jane.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create tenant")
	}
	log.Info().Msg("Created tenants")

	building1, err := buildings.Create(ctx, service.BuildingInput{
		Address:        "123 Main St",
		StartingDate:   model.NewDate(2024, time.January, 1),
		EndingDate:     model.NewDate(2025, time.January, 1),
		LandlordID:     &john.ID,
		TenantID:       &alice.ID,
		PropertyTypeID: &apartment.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create rental building")
	}
	building2, err := buildings.Create(ctx, service.BuildingInput{
		Address:        "456 Oak Ave",
		StartingDate:   model.NewDate(2024, time.February, 1),
		EndingDate:     model.NewDate(2025, time.February, 1),
		LandlordID:     &jane.ID,
		TenantID:       &bob.ID,
		PropertyTypeID: &condo.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create rental building")
	}
	log.Info().Msg("Created rental buildings")

	_, err = payments.Create(ctx, service.PaymentInput{
		MonthlyPrice: 1200, Price: 1200, PaymentStatus: true,
		PaymentDate: model.NewDate(2024, time.February, 1),
		DueDate:     model.NewDate(2024, time.February, 1),
		PaymentPeriod: "02-2024", RentalBuildingID: &building1.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create payment")
	}
	_, err = payments.Create(ctx, service.PaymentInput{
		MonthlyPrice: 1400, Price: 1400, PaymentStatus: false,
		PaymentDate: model.NewDate(2024, time.February, 10),
		DueDate:     model.NewDate(2024, time.February, 5),
		PaymentPeriod: "02-2024", RentalBuildingID: &building2.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create payment")
	}
	log.Info().Msg("Created payments")

	log.Info().Msg("Seeding complete")
}

func mustPropertyType(ctx context.Context, svc *service.PropertyTypeService, name string) *model.PropertyType {
	p, err := svc.Create(ctx, name)
	if err != nil {
		log.Fatal().Err(err).Str("name", name).Msg("Failed to create property type")
	}
	return p
}
