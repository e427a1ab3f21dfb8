// Seeds an empty database with demo accounts and offers.
package main

import (
	"context"
	"time"

	"github.com/voyago/api/config"
	repository "github.com/voyago/api/internal/database/postgres"
	"github.com/voyago/api/internal/entity"
	"github.com/voyago/api/pkg/auth"
	"github.com/voyago/api/pkg/postgres"

	"github.com/sirupsen/logrus"
)

func main() {
	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	// Start from a clean slate
	for _, table := range []string{"bookings", "offers", "users"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			logrus.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	offerRepo := repository.NewOfferRepository(db)

	digest, err := auth.HashPassword("123456")
	if err != nil {
		logrus.Fatalf("Failed to hash password: %v", err)
	}

	admin := &entity.User{Name: "Admin", Email: "admin@test.com", PasswordHash: digest, Role: entity.RoleAdmin}
	client := &entity.User{Name: "Client", Email: "client@test.com", PasswordHash: digest, Role: entity.RoleClient}

	for _, user := range []*entity.User{admin, client} {
		if err := userRepo.Create(ctx, user); err != nil {
			logrus.Fatalf("Failed to create user %s: %v", user.Email, err)
		}
	}
	logrus.Info("Demo users created")

	offers := []*entity.Offer{
		{
			Type:        entity.OfferTypePlace,
			Title:       "Hotel Negresco",
			Description: "Seafront luxury in Nice",
			Price:       250,
			OwnerID:     admin.ID,
			IsActive:    true,
			Location:    &entity.Location{City: "Nice", Country: "France"},
			Place:       &entity.PlaceDetails{Address: "37 Promenade des Anglais", Capacity: 120},
		},
		{
			Type:        entity.OfferTypeActivity,
			Title:       "Mont Blanc Hike",
			Description: "Guided day hike with mountain views",
			Price:       80,
			OwnerID:     admin.ID,
			IsActive:    true,
			Location:    &entity.Location{City: "Chamonix", Country: "France"},
			Activity:    &entity.ActivityDetails{Schedule: time.Now().AddDate(0, 1, 0), Difficulty: entity.DifficultyHard},
		},
		{
			Type:        entity.OfferTypeTransportation,
			Title:       "Paris - Nice TGV",
			Description: "High-speed rail, one way",
			Price:       95,
			OwnerID:     admin.ID,
			IsActive:    true,
			Location:    &entity.Location{City: "Paris", Country: "France"},
			Transportation: &entity.TransportationDetails{
				Departure: "Paris Gare de Lyon",
				Arrival:   "Nice Ville",
				Duration:  350,
			},
		},
	}

	for _, offer := range offers {
		if err := offer.Validate(); err != nil {
			logrus.Fatalf("Invalid seed offer %q: %v", offer.Title, err)
		}
		if err := offerRepo.Create(ctx, offer); err != nil {
			logrus.Fatalf("Failed to create offer %q: %v", offer.Title, err)
		}
	}
	logrus.Infof("Seeded %d offers", len(offers))
}
