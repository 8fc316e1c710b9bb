package mapper

import (
	"fmt"

	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
)

// InquiryFromRow - та же политика подстановки, что и для владельца объявления
func InquiryFromRow(row domain.InquiryRow, renter *domain.ProfileJoin) domain.Inquiry {
	phone := ""
	if row.Phone != nil {
		phone = *row.Phone
	}
	return domain.Inquiry{
		ID:          row.ID,
		PropertyID:  row.PropertyID,
		RenterID:    row.RenterID,
		RenterName:  displayName(renter),
		RenterEmail: contact(renter),
		Phone:       phone,
		Message:     row.Message,
		Status:      domain.InquiryStatus(row.Status),
		CreatedAt:   row.CreatedAt,
	}
}

func InquiriesFromRecords(records []domain.InquiryRecord) []domain.Inquiry {
	inquiries := make([]domain.Inquiry, 0, len(records))
	for _, rec := range records {
		inquiries = append(inquiries, InquiryFromRow(rec.Row, rec.Renter))
	}
	return inquiries
}

// InquiryInsertValues - новое обращение всегда начинается со статуса pending
func InquiryInsertValues(in domain.NewInquiry, renterID uuid.UUID) RowValues {
	values := RowValues{
		query.ColumnPropertyID: in.PropertyID,
		query.ColumnRenterID:   renterID,
		query.ColumnMessage:    in.Message,
		query.ColumnStatus:     string(domain.InquiryStatusPending),
	}
	if in.Phone != "" {
		values[query.ColumnPhone] = in.Phone
	} else {
		values[query.ColumnPhone] = nil
	}
	return values
}

// InquiryStatusValues - единственное изменяемое поле обращения
func InquiryStatusValues(status domain.InquiryStatus) RowValues {
	return RowValues{query.ColumnStatus: string(status)}
}

func ApplyInquiryValues(row *domain.InquiryRow, values RowValues) error {
	for _, col := range values.Columns() {
		v := values[col]
		var err error
		switch col {
		case query.ColumnPropertyID:
			err = assign(&row.PropertyID, v, col)
		case query.ColumnRenterID:
			err = assign(&row.RenterID, v, col)
		case query.ColumnMessage:
			err = assign(&row.Message, v, col)
		case query.ColumnPhone:
			err = assignNullable(&row.Phone, v, col)
		case query.ColumnStatus:
			err = assign(&row.Status, v, col)
		case query.ColumnCreatedAt:
			err = assign(&row.CreatedAt, v, col)
		case query.ColumnUpdatedAt:
			err = assign(&row.UpdatedAt, v, col)
		default:
			err = fmt.Errorf("unknown inquiries column %q", col)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
