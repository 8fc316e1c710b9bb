package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	require.NoError(t, Load())
	schemas, err := loadSchemas()
	require.NoError(t, err)
	for _, name := range []string{
		CreatePropertyRequest, UpdatePropertyRequest, CreateInquiryRequest,
		UpdateInquiryStatusRequest, UpdateProfileRequest,
		InquiryCreatedEvent, InquiryStatusChangedEvent,
	} {
		assert.Contains(t, schemas, name+"/"+V1)
	}
}

func TestKeyFromPath(t *testing.T) {
	key, err := keyFromPath("schemas/events/inquiry-status-changed/v1.json")
	require.NoError(t, err)
	assert.Equal(t, "InquiryStatusChangedEvent/1.0.0", key)

	key, err = keyFromPath("schemas/requests/create-property/v2.json")
	require.NoError(t, err)
	assert.Equal(t, "CreatePropertyRequest/2.0.0", key)

	_, err = keyFromPath("schemas/other/x/v1.json")
	assert.Error(t, err)
}

func TestValidateRequest_UpdateProperty(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"availability only", `{"available": false}`, false},
		{"empty patch", `{}`, false},
		{"clear coordinates", `{"location": {"coordinates": null}}`, false},
		{"set coordinates", `{"location": {"coordinates": {"lat": 40.7, "lng": -74}}}`, false},
		{"owner is server managed", `{"ownerId": "00000000-0000-4000-8000-000000000002"}`, true},
		{"createdAt is server managed", `{"createdAt": "2024-01-01T00:00:00Z"}`, true},
		{"negative price", `{"price": -5}`, true},
		{"fractional bedrooms", `{"bedrooms": 1.5}`, true},
		{"unknown type", `{"type": "castle"}`, true},
		{"not json", `{"title":`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(UpdatePropertyRequest, V1, []byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequest_CreateProperty(t *testing.T) {
	valid := `{
		"title": "Loft", "type": "studio", "price": 1800,
		"location": {"address": "789 Art Street", "city": "Chicago", "state": "IL", "zipCode": "60601"},
		"bedrooms": 1, "amenities": ["Gym"]
	}`
	assert.NoError(t, ValidateRequest(CreatePropertyRequest, V1, []byte(valid)))

	missingLocation := `{"title": "Loft", "type": "studio", "price": 1800}`
	assert.Error(t, ValidateRequest(CreatePropertyRequest, V1, []byte(missingLocation)))

	withOwner := `{"title": "Loft", "type": "studio", "price": 1800, "ownerId": "x",
		"location": {"address": "a", "city": "b", "state": "c"}}`
	assert.Error(t, ValidateRequest(CreatePropertyRequest, V1, []byte(withOwner)))
}

func TestValidateEvent(t *testing.T) {
	ok := `{
		"inquiry_id": "6f1c2a3e-8d4b-4f7a-9c1e-2b3d4e5f6a7b",
		"property_id": "7a2b3c4d-5e6f-4a1b-8c2d-3e4f5a6b7c8d",
		"renter_id": "00000000-0000-4000-8000-000000000001",
		"status": "pending",
		"occurred_at": "2024-05-01T12:00:00Z"
	}`
	assert.NoError(t, ValidateEvent(InquiryCreatedEvent, V1, []byte(ok)))

	badID := `{"inquiry_id": "nope", "property_id": "7a2b3c4d-5e6f-4a1b-8c2d-3e4f5a6b7c8d",
		"renter_id": "00000000-0000-4000-8000-000000000001", "status": "pending", "occurred_at": "2024-05-01T12:00:00Z"}`
	assert.Error(t, ValidateEvent(InquiryCreatedEvent, V1, []byte(badID)))

	assert.Error(t, ValidateEvent("UnknownEvent", V1, []byte(ok)))
}
