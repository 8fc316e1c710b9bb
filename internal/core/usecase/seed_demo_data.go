package usecase

import (
	"context"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
)

// Фиксированные id демо-пользователей, чтобы под них можно было выпустить токен командой `token`
var (
	DemoRenterID = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	DemoOwnerID  = uuid.MustParse("00000000-0000-4000-8000-000000000002")
	DemoAdminID  = uuid.MustParse("00000000-0000-4000-8000-000000000003")
)

type SeedDemoDataUseCase struct {
	properties port.PropertyStoragePort
	profiles   port.ProfileStoragePort
}

func NewSeedDemoDataUseCase(properties port.PropertyStoragePort, profiles port.ProfileStoragePort) *SeedDemoDataUseCase {
	return &SeedDemoDataUseCase{properties: properties, profiles: profiles}
}

// Execute идемпотентен: профили не перезаписываются, объявления с тем же заголовком пропускаются.
// Возвращает число созданных объявлений.
func (uc *SeedDemoDataUseCase) Execute(ctx context.Context) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SeedDemoData"})

	ucLogger.Info("Use case started", nil)

	for _, user := range demoUsers() {
		if _, err := uc.profiles.Upsert(ctx, mapper.ProfileInsertValues(user)); err != nil {
			ucLogger.Error("Failed to seed profile", err, port.Fields{"email": user.Email})
			return 0, err
		}
	}

	existing, err := uc.properties.Query(ctx, query.OwnedPropertiesSpec(DemoOwnerID))
	if err != nil {
		ucLogger.Error("Failed to load existing demo listings", err, nil)
		return 0, err
	}
	titles := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		titles[rec.Row.Title] = struct{}{}
	}

	created := 0
	for _, listing := range demoListings() {
		if _, ok := titles[listing.Title]; ok {
			continue
		}
		if _, err := uc.properties.Insert(ctx, mapper.PropertyInsertValues(listing, DemoOwnerID)); err != nil {
			ucLogger.Error("Failed to seed listing", err, port.Fields{"title": listing.Title})
			return created, err
		}
		created++
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"created": created})
	return created, nil
}

func demoUsers() []domain.User {
	phone := "+1 (555) 123-4567"
	return []domain.User{
		{ID: DemoRenterID, Name: "Alice Johnson", Email: "alice@example.com", Role: domain.RoleRenter, Verified: true},
		{ID: DemoOwnerID, Name: "Bob Smith", Email: "bob@example.com", Role: domain.RoleOwner, Phone: &phone, Verified: true},
		{ID: DemoAdminID, Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin, Verified: true},
	}
}

func demoListings() []domain.NewProperty {
	unavailable := false
	return []domain.NewProperty{
		{
			Title:       "Charming Garden Apartment",
			Description: "Ground floor apartment with private garden access, perfect for those who love outdoor space and natural light.",
			Type:        domain.PropertyTypeApartment,
			Price:       2100,
			Location:    domain.Location{Address: "234 Garden Lane", City: "Portland", State: "OR", ZipCode: "97201"},
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        1000,
			Amenities:   []string{"Private Garden", "Natural Light", "Updated Kitchen", "Storage Space"},
			Images:      []string{"https://images.pexels.com/photos/1571470/pexels-photo-1571470.jpeg?auto=compress&cs=tinysrgb&w=800"},
			Available:   &unavailable,
			PetFriendly: true,
		},
		{
			Title:       "Luxury Penthouse",
			Description: "Exceptional penthouse with panoramic city views, premium finishes, and access to exclusive building amenities.",
			Type:        domain.PropertyTypeApartment,
			Price:       5500,
			Location:    domain.Location{Address: "101 Skyline Drive", City: "Miami", State: "FL", ZipCode: "33101"},
			Bedrooms:    3,
			Bathrooms:   3,
			Area:        2200,
			Amenities:   []string{"City Views", "Concierge", "Pool", "Spa", "Premium Finishes", "Private Elevator"},
			Images:      []string{"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg?auto=compress&cs=tinysrgb&w=800"},
			Furnished:   true,
			PetFriendly: true,
			Parking:     true,
		},
		{
			Title:       "Studio Loft in Arts District",
			Description: "Trendy studio loft in the vibrant arts district with exposed brick walls, high ceilings, and creative community atmosphere.",
			Type:        domain.PropertyTypeStudio,
			Price:       1800,
			Location:    domain.Location{Address: "789 Art Street", City: "Chicago", State: "IL", ZipCode: "60601"},
			Bedrooms:    1,
			Bathrooms:   1,
			Area:        800,
			Amenities:   []string{"High Ceilings", "Exposed Brick", "Natural Light", "Creative Space"},
			Images:      []string{"https://images.pexels.com/photos/1428348/pexels-photo-1428348.jpeg?auto=compress&cs=tinysrgb&w=800"},
			Furnished:   true,
		},
		{
			Title:       "Cozy Family House",
			Description: "Spacious 3-bedroom house perfect for families, featuring a large backyard, modern kitchen, and quiet neighborhood setting.",
			Type:        domain.PropertyTypeHouse,
			Price:       3200,
			Location:    domain.Location{Address: "456 Oak Avenue", City: "Los Angeles", State: "CA", ZipCode: "90210"},
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        1800,
			Amenities:   []string{"Backyard", "Garage", "Fireplace", "Modern Kitchen", "Hardwood Floors"},
			Images:      []string{"https://images.pexels.com/photos/106399/pexels-photo-106399.jpeg?auto=compress&cs=tinysrgb&w=800"},
			PetFriendly: true,
			Parking:     true,
		},
		{
			Title:       "Modern Downtown Apartment",
			Description: "Beautiful 2-bedroom apartment in the heart of downtown with stunning city views, modern amenities, and walking distance to restaurants and shopping.",
			Type:        domain.PropertyTypeApartment,
			Price:       2500,
			Location:    domain.Location{Address: "123 Main Street", City: "New York", State: "NY", ZipCode: "10001"},
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        1200,
			Amenities:   []string{"Air Conditioning", "Dishwasher", "In-unit Laundry", "Balcony", "Gym Access"},
			Images:      []string{"https://images.pexels.com/photos/1457842/pexels-photo-1457842.jpeg?auto=compress&cs=tinysrgb&w=800"},
			Furnished:   true,
			Parking:     true,
		},
	}
}
