package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"stayhub/internal/database"
	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

// Seeds a demo catalog: one admin, one host, one guest, and a handful of
// listings. Safe to run once against an empty database.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	properties := repository.NewPropertyRepository(db)

	if exists, err := users.ExistsByEmail(ctx, "admin@stayhub.local"); err != nil {
		log.Fatal(err)
	} else if exists {
		log.Fatal("database already seeded")
	}

	admin := seedUser(ctx, users, "admin@stayhub.local", "Platform Admin", domain.RoleAdmin)
	host := seedUser(ctx, users, "host@stayhub.local", "Demo Host", domain.RoleHost)
	guest := seedUser(ctx, users, "guest@stayhub.local", "Demo Guest", domain.RoleGuest)

	listings := []domain.Property{
		{
			Title:         "Corniche sea-view apartment",
			Description:   "Two-bedroom apartment overlooking the Jeddah corniche.",
			Location:      "Jeddah",
			PricePerNight: 450,
			MaxGuests:     4,
			Bedrooms:      2,
			Bathrooms:     2,
			PropertyType:  domain.PropertyApartment,
			Amenities:     []string{"wifi", "pool", "parking"},
			Photos:        []string{"https://images.stayhub.local/corniche-1.jpg"},
			IsActive:      true,
			IsFeatured:    true,
		},
		{
			Title:         "Desert-edge family villa",
			Description:   "Private villa with a garden and barbecue area.",
			Location:      "Riyadh",
			PricePerNight: 1200,
			MaxGuests:     8,
			Bedrooms:      4,
			Bathrooms:     3,
			PropertyType:  domain.PropertyVilla,
			Amenities:     []string{"wifi", "pool", "gym", "parking"},
			IsActive:      true,
		},
		{
			Title:         "Old town studio",
			Description:   "Compact studio near the historic district.",
			Location:      "Riyadh",
			PricePerNight: 180,
			MaxGuests:     2,
			Bedrooms:      1,
			Bathrooms:     1,
			PropertyType:  domain.PropertyStudio,
			Amenities:     []string{"wifi"},
			IsActive:      true,
		},
		{
			Title:         "Mountain chalet in Abha",
			Description:   "Cool-weather chalet with a fireplace and terrace.",
			Location:      "Abha",
			PricePerNight: 600,
			MaxGuests:     6,
			Bedrooms:      3,
			Bathrooms:     2,
			PropertyType:  domain.PropertyChalet,
			Amenities:     []string{"wifi", "parking", "fireplace"},
			IsActive:      true,
		},
	}

	for i := range listings {
		listings[i].HostID = host.ID
		if err := properties.Create(ctx, &listings[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("seeded admin=%d host=%d guest=%d properties=%d", admin.ID, host.ID, guest.ID, len(listings))
}

func seedUser(ctx context.Context, users *repository.UserRepository, email, name string, role domain.UserRole) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal(err)
	}
	return u
}
