package domain

import (
	"time"

	"github.com/google/uuid"
)

// Строки хранилища в том виде, в каком их отдает БД: snake_case, nullable поля - указатели.

type PropertyRow struct {
	ID          uuid.UUID
	Title       string
	Description string
	Type        string
	Price       float64
	Address     string
	City        string
	State       string
	ZipCode     string
	Latitude    *float64
	Longitude   *float64
	Bedrooms    int
	Bathrooms   int
	Area        float64
	Amenities   []string
	Images      []string
	OwnerID     uuid.UUID
	Available   bool
	Furnished   bool
	PetFriendly bool
	Parking     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type InquiryRow struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	RenterID   uuid.UUID
	Message    string
	Phone      *string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ProfileRow struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	Phone     *string
	AvatarURL *string
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileJoin - поля профиля, которые приходят через LEFT JOIN. Оба могут быть NULL.
type ProfileJoin struct {
	Name  *string
	Email *string
}

// PropertyRecord - строка объявления вместе с присоединенным профилем владельца (если он нашелся)
type PropertyRecord struct {
	Row   PropertyRow
	Owner *ProfileJoin
}

// InquiryRecord - строка обращения вместе с профилем арендатора
type InquiryRecord struct {
	Row    InquiryRow
	Renter *ProfileJoin
}
