package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PropertyType - категория объявления
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeRoom      PropertyType = "room"
	PropertyTypeStudio    PropertyType = "studio"
)

// PropertyTypes в порядке отображения в форме фильтров
var PropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeRoom,
	PropertyTypeStudio,
}

func (t PropertyType) IsValid() bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Coordinates - пара широта/долгота. Либо есть обе, либо нет ни одной.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address     string       `json:"address"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	ZipCode     string       `json:"zipCode"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Property - модель объявления, которую получает UI
type Property struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         PropertyType `json:"type"`
	Price        float64      `json:"price"`
	Location     Location     `json:"location"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	Area         float64      `json:"area"`
	Amenities    []string     `json:"amenities"`
	Images       []string     `json:"images"`
	OwnerID      uuid.UUID    `json:"ownerId"`
	OwnerName    string       `json:"ownerName"`
	OwnerContact string       `json:"ownerContact"`
	Available    bool         `json:"available"`
	Furnished    bool         `json:"furnished"`
	PetFriendly  bool         `json:"petFriendly"`
	Parking      bool         `json:"parking"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// NewProperty - данные, которые владелец передает при создании объявления.
// Владелец и временные метки сюда не входят: их проставляет сервер.
type NewProperty struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        PropertyType `json:"type"`
	Price       float64      `json:"price"`
	Location    Location     `json:"location"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Area        float64      `json:"area"`
	Amenities   []string     `json:"amenities"`
	Images      []string     `json:"images"`
	Available   *bool        `json:"available"`
	Furnished   bool         `json:"furnished"`
	PetFriendly bool         `json:"petFriendly"`
	Parking     bool         `json:"parking"`
}

func (p NewProperty) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidInput, p.Type)
	}
	return validateMeasures(&p.Price, &p.Bedrooms, &p.Bathrooms, &p.Area)
}

// LocationPatch - частичное обновление адреса.
// Coordinates различает "не передано" и явный null (сброс координат).
type LocationPatch struct {
	Address     *string               `json:"address"`
	City        *string               `json:"city"`
	State       *string               `json:"state"`
	ZipCode     *string               `json:"zipCode"`
	Coordinates Nullable[Coordinates] `json:"coordinates"`
}

// PropertyPatch - частичное обновление объявления. nil означает "поле не передано".
// Серверные поля (id, ownerId, ownerName, ownerContact, createdAt, updatedAt) здесь отсутствуют намеренно.
type PropertyPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Type        *PropertyType  `json:"type"`
	Price       *float64       `json:"price"`
	Location    *LocationPatch `json:"location"`
	Bedrooms    *int           `json:"bedrooms"`
	Bathrooms   *int           `json:"bathrooms"`
	Area        *float64       `json:"area"`
	Amenities   *[]string      `json:"amenities"`
	Images      *[]string      `json:"images"`
	Available   *bool          `json:"available"`
	Furnished   *bool          `json:"furnished"`
	PetFriendly *bool          `json:"petFriendly"`
	Parking     *bool          `json:"parking"`
}

func (p PropertyPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	if p.Type != nil && !p.Type.IsValid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidInput, *p.Type)
	}
	return validateMeasures(p.Price, p.Bedrooms, p.Bathrooms, p.Area)
}

func validateMeasures(price *float64, bedrooms, bathrooms *int, area *float64) error {
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if bedrooms != nil && *bedrooms < 0 {
		return fmt.Errorf("%w: bedrooms must be non-negative", ErrInvalidInput)
	}
	if bathrooms != nil && *bathrooms < 0 {
		return fmt.Errorf("%w: bathrooms must be non-negative", ErrInvalidInput)
	}
	if area != nil && *area < 0 {
		return fmt.Errorf("%w: area must be non-negative", ErrInvalidInput)
	}
	return nil
}
