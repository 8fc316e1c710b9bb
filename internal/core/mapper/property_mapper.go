package mapper

import (
	"fmt"
	"time"

	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
)

const (
	UnknownDisplayName = "Unknown"
	EmptyContact       = ""
)

// displayName и contact никогда не возвращают nil: нет профиля - "Unknown" и пустой контакт
func displayName(join *domain.ProfileJoin) string {
	if join == nil || join.Name == nil || *join.Name == "" {
		return UnknownDisplayName
	}
	return *join.Name
}

func contact(join *domain.ProfileJoin) string {
	if join == nil || join.Email == nil {
		return EmptyContact
	}
	return *join.Email
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// PropertyFromRow собирает модель объявления из строки и (необязательного) профиля владельца
func PropertyFromRow(row domain.PropertyRow, owner *domain.ProfileJoin) domain.Property {
	location := domain.Location{
		Address: row.Address,
		City:    row.City,
		State:   row.State,
		ZipCode: row.ZipCode,
	}
	if row.Latitude != nil && row.Longitude != nil {
		location.Coordinates = &domain.Coordinates{Lat: *row.Latitude, Lng: *row.Longitude}
	}

	return domain.Property{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Type:         domain.PropertyType(row.Type),
		Price:        row.Price,
		Location:     location,
		Bedrooms:     row.Bedrooms,
		Bathrooms:    row.Bathrooms,
		Area:         row.Area,
		Amenities:    nonNilStrings(row.Amenities),
		Images:       nonNilStrings(row.Images),
		OwnerID:      row.OwnerID,
		OwnerName:    displayName(owner),
		OwnerContact: contact(owner),
		Available:    row.Available,
		Furnished:    row.Furnished,
		PetFriendly:  row.PetFriendly,
		Parking:      row.Parking,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func PropertiesFromRecords(records []domain.PropertyRecord) []domain.Property {
	properties := make([]domain.Property, 0, len(records))
	for _, rec := range records {
		properties = append(properties, PropertyFromRow(rec.Row, rec.Owner))
	}
	return properties
}

// PropertyInsertValues - полная строка для вставки. Владелец берется из identity, а не из тела запроса.
func PropertyInsertValues(p domain.NewProperty, ownerID uuid.UUID) RowValues {
	available := true
	if p.Available != nil {
		available = *p.Available
	}

	values := RowValues{
		query.ColumnTitle:       p.Title,
		query.ColumnDescription: p.Description,
		query.ColumnType:        string(p.Type),
		query.ColumnPrice:       p.Price,
		query.ColumnAddress:     p.Location.Address,
		query.ColumnCity:        p.Location.City,
		query.ColumnState:       p.Location.State,
		query.ColumnZipCode:     p.Location.ZipCode,
		query.ColumnBedrooms:    p.Bedrooms,
		query.ColumnBathrooms:   p.Bathrooms,
		query.ColumnArea:        p.Area,
		query.ColumnAmenities:   nonNilStrings(p.Amenities),
		query.ColumnImages:      nonNilStrings(p.Images),
		query.ColumnOwnerID:     ownerID,
		query.ColumnAvailable:   available,
		query.ColumnFurnished:   p.Furnished,
		query.ColumnPetFriendly: p.PetFriendly,
		query.ColumnParking:     p.Parking,
	}
	if c := p.Location.Coordinates; c != nil {
		values[query.ColumnLatitude] = c.Lat
		values[query.ColumnLongitude] = c.Lng
	}
	return values
}

// PropertyPatchValues переводит частичное обновление в колонки.
// Попадают только переданные поля. coordinates: null обнуляет обе колонки.
func PropertyPatchValues(p domain.PropertyPatch) RowValues {
	values := RowValues{}

	if p.Title != nil {
		values[query.ColumnTitle] = *p.Title
	}
	if p.Description != nil {
		values[query.ColumnDescription] = *p.Description
	}
	if p.Type != nil {
		values[query.ColumnType] = string(*p.Type)
	}
	if p.Price != nil {
		values[query.ColumnPrice] = *p.Price
	}
	if loc := p.Location; loc != nil {
		if loc.Address != nil {
			values[query.ColumnAddress] = *loc.Address
		}
		if loc.City != nil {
			values[query.ColumnCity] = *loc.City
		}
		if loc.State != nil {
			values[query.ColumnState] = *loc.State
		}
		if loc.ZipCode != nil {
			values[query.ColumnZipCode] = *loc.ZipCode
		}
		if loc.Coordinates.Set {
			if loc.Coordinates.Null {
				values[query.ColumnLatitude] = nil
				values[query.ColumnLongitude] = nil
			} else {
				values[query.ColumnLatitude] = loc.Coordinates.Value.Lat
				values[query.ColumnLongitude] = loc.Coordinates.Value.Lng
			}
		}
	}
	if p.Bedrooms != nil {
		values[query.ColumnBedrooms] = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		values[query.ColumnBathrooms] = *p.Bathrooms
	}
	if p.Area != nil {
		values[query.ColumnArea] = *p.Area
	}
	if p.Amenities != nil {
		values[query.ColumnAmenities] = nonNilStrings(*p.Amenities)
	}
	if p.Images != nil {
		values[query.ColumnImages] = nonNilStrings(*p.Images)
	}
	if p.Available != nil {
		values[query.ColumnAvailable] = *p.Available
	}
	if p.Furnished != nil {
		values[query.ColumnFurnished] = *p.Furnished
	}
	if p.PetFriendly != nil {
		values[query.ColumnPetFriendly] = *p.PetFriendly
	}
	if p.Parking != nil {
		values[query.ColumnParking] = *p.Parking
	}
	return values
}

// ApplyPropertyValues записывает фрагмент в строку. Используется хранилищем в памяти
// и проверяет, что типы значений совпадают с колонками.
func ApplyPropertyValues(row *domain.PropertyRow, values RowValues) error {
	for _, col := range values.Columns() {
		v := values[col]
		var err error
		switch col {
		case query.ColumnTitle:
			err = assign(&row.Title, v, col)
		case query.ColumnDescription:
			err = assign(&row.Description, v, col)
		case query.ColumnType:
			err = assign(&row.Type, v, col)
		case query.ColumnPrice:
			err = assign(&row.Price, v, col)
		case query.ColumnAddress:
			err = assign(&row.Address, v, col)
		case query.ColumnCity:
			err = assign(&row.City, v, col)
		case query.ColumnState:
			err = assign(&row.State, v, col)
		case query.ColumnZipCode:
			err = assign(&row.ZipCode, v, col)
		case query.ColumnLatitude:
			err = assignNullable(&row.Latitude, v, col)
		case query.ColumnLongitude:
			err = assignNullable(&row.Longitude, v, col)
		case query.ColumnBedrooms:
			err = assign(&row.Bedrooms, v, col)
		case query.ColumnBathrooms:
			err = assign(&row.Bathrooms, v, col)
		case query.ColumnArea:
			err = assign(&row.Area, v, col)
		case query.ColumnAmenities:
			err = assign(&row.Amenities, v, col)
		case query.ColumnImages:
			err = assign(&row.Images, v, col)
		case query.ColumnOwnerID:
			err = assign(&row.OwnerID, v, col)
		case query.ColumnAvailable:
			err = assign(&row.Available, v, col)
		case query.ColumnFurnished:
			err = assign(&row.Furnished, v, col)
		case query.ColumnPetFriendly:
			err = assign(&row.PetFriendly, v, col)
		case query.ColumnParking:
			err = assign(&row.Parking, v, col)
		case query.ColumnCreatedAt:
			err = assign(&row.CreatedAt, v, col)
		case query.ColumnUpdatedAt:
			err = assign(&row.UpdatedAt, v, col)
		default:
			err = fmt.Errorf("unknown properties column %q", col)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func assign[T any](dst *T, v interface{}, col query.Column) error {
	typed, ok := v.(T)
	if !ok {
		return fmt.Errorf("column %q: unexpected value type %T", col, v)
	}
	*dst = typed
	return nil
}

func assignNullable[T any](dst **T, v interface{}, col query.Column) error {
	if v == nil {
		*dst = nil
		return nil
	}
	typed, ok := v.(T)
	if !ok {
		return fmt.Errorf("column %q: unexpected value type %T", col, v)
	}
	*dst = &typed
	return nil
}

// touch проставляет updated_at для хранилищ, у которых нет триггера
func touch(values RowValues, now time.Time) RowValues {
	out := make(RowValues, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	out[query.ColumnUpdatedAt] = now
	return out
}

// WithTimestamps добавляет created_at/updated_at к фрагменту вставки
func WithTimestamps(values RowValues, now time.Time) RowValues {
	out := touch(values, now)
	out[query.ColumnCreatedAt] = now
	return out
}

// Touched добавляет updated_at к фрагменту обновления
func Touched(values RowValues, now time.Time) RowValues {
	return touch(values, now)
}
