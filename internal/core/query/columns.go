package query

// Column - имя колонки в хранилище (snake_case)
type Column string

// properties
const (
	ColumnID          Column = "id"
	ColumnTitle       Column = "title"
	ColumnDescription Column = "description"
	ColumnType        Column = "type"
	ColumnPrice       Column = "price"
	ColumnAddress     Column = "address"
	ColumnCity        Column = "city"
	ColumnState       Column = "state"
	ColumnZipCode     Column = "zip_code"
	ColumnLatitude    Column = "latitude"
	ColumnLongitude   Column = "longitude"
	ColumnBedrooms    Column = "bedrooms"
	ColumnBathrooms   Column = "bathrooms"
	ColumnArea        Column = "area"
	ColumnAmenities   Column = "amenities"
	ColumnImages      Column = "images"
	ColumnOwnerID     Column = "owner_id"
	ColumnAvailable   Column = "available"
	ColumnFurnished   Column = "furnished"
	ColumnPetFriendly Column = "pet_friendly"
	ColumnParking     Column = "parking"
	ColumnCreatedAt   Column = "created_at"
	ColumnUpdatedAt   Column = "updated_at"
)

// inquiries
const (
	ColumnPropertyID Column = "property_id"
	ColumnRenterID   Column = "renter_id"
	ColumnMessage    Column = "message"
	ColumnPhone      Column = "phone"
	ColumnStatus     Column = "status"
)

// profiles
const (
	ColumnName      Column = "name"
	ColumnEmail     Column = "email"
	ColumnRole      Column = "role"
	ColumnAvatarURL Column = "avatar_url"
	ColumnVerified  Column = "verified"
)
