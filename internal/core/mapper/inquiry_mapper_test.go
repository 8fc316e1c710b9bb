package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryFromRow(t *testing.T) {
	row := domain.InquiryRow{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		RenterID:   uuid.New(),
		Message:    "Is it still available?",
		Phone:      strPtr("+1 555 0100"),
		Status:     "contacted",
		CreatedAt:  time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("missing renter profile", func(t *testing.T) {
		inq := InquiryFromRow(row, nil)
		assert.Equal(t, "Unknown", inq.RenterName)
		assert.Equal(t, "", inq.RenterEmail)
		assert.Equal(t, row.PropertyID, inq.PropertyID)
		assert.Equal(t, row.RenterID, inq.RenterID)
		assert.Equal(t, domain.InquiryStatusContacted, inq.Status)
		assert.Equal(t, row.Message, inq.Message)
		assert.Equal(t, "+1 555 0100", inq.Phone)
		assert.Equal(t, row.CreatedAt, inq.CreatedAt)
	})

	t.Run("joined renter", func(t *testing.T) {
		inq := InquiryFromRow(row, &domain.ProfileJoin{Name: strPtr("Alice"), Email: strPtr("alice@example.com")})
		assert.Equal(t, "Alice", inq.RenterName)
		assert.Equal(t, "alice@example.com", inq.RenterEmail)
	})

	t.Run("json names", func(t *testing.T) {
		raw, err := json.Marshal(InquiryFromRow(row, nil))
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"propertyId"`)
		assert.Contains(t, string(raw), `"renterId"`)
	})
}

func TestInquiryInsertValues(t *testing.T) {
	renter := uuid.New()
	in := domain.NewInquiry{PropertyID: uuid.New(), Message: "Hello"}

	values := InquiryInsertValues(in, renter)
	assert.Equal(t, "pending", values[query.ColumnStatus])
	assert.Equal(t, renter, values[query.ColumnRenterID])
	assert.True(t, values.Has(query.ColumnPhone))
	assert.Nil(t, values[query.ColumnPhone])

	var row domain.InquiryRow
	require.NoError(t, ApplyInquiryValues(&row, values))
	inq := InquiryFromRow(row, nil)
	assert.Equal(t, in.PropertyID, inq.PropertyID)
	assert.Equal(t, in.Message, inq.Message)
	assert.Equal(t, "", inq.Phone)
	assert.Equal(t, domain.InquiryStatusPending, inq.Status)
}

func TestInquiryStatusValues_TouchesOnlyStatus(t *testing.T) {
	values := InquiryStatusValues(domain.InquiryStatusApproved)
	assert.Equal(t, []query.Column{query.ColumnStatus}, values.Columns())
}

func TestProfilePatchValues(t *testing.T) {
	var patch domain.ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Bob", "phone": null, "role": "admin"}`), &patch))

	values := ProfilePatchValues(patch)
	assert.Equal(t, RowValues{query.ColumnName: "Bob", query.ColumnPhone: nil}, values)

	row := domain.ProfileRow{Name: "Old", Role: "owner", Phone: strPtr("123"), AvatarURL: strPtr("a.png")}
	require.NoError(t, ApplyProfileValues(&row, values))
	assert.Equal(t, "Bob", row.Name)
	assert.Nil(t, row.Phone)
	assert.Equal(t, "owner", row.Role)
	require.NotNil(t, row.AvatarURL)
	assert.Equal(t, "a.png", *row.AvatarURL)
}

func TestRowValues_ColumnsSorted(t *testing.T) {
	values := RowValues{query.ColumnTitle: "t", query.ColumnArea: 1.0, query.ColumnPrice: 2.0}
	assert.Equal(t, []query.Column{query.ColumnArea, query.ColumnPrice, query.ColumnTitle}, values.Columns())
}
