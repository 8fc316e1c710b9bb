package mapper

import (
	"fmt"

	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/query"
)

func UserFromProfileRow(row domain.ProfileRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      domain.Role(row.Role),
		Phone:     row.Phone,
		Avatar:    row.AvatarURL,
		Verified:  row.Verified,
		CreatedAt: row.CreatedAt,
	}
}

// ProfileInsertValues - профиль создается один раз, роль дальше не меняется
func ProfileInsertValues(u domain.User) RowValues {
	return RowValues{
		query.ColumnID:        u.ID,
		query.ColumnName:      u.Name,
		query.ColumnEmail:     u.Email,
		query.ColumnRole:      string(u.Role),
		query.ColumnPhone:     stringOrNil(u.Phone),
		query.ColumnAvatarURL: stringOrNil(u.Avatar),
		query.ColumnVerified:  u.Verified,
	}
}

func stringOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// ProfilePatchValues - только имя, телефон и аватар
func ProfilePatchValues(p domain.ProfilePatch) RowValues {
	values := RowValues{}
	if p.Name != nil {
		values[query.ColumnName] = *p.Name
	}
	if p.Phone.Set {
		values[query.ColumnPhone] = stringOrNil(p.Phone.Ptr())
	}
	if p.Avatar.Set {
		values[query.ColumnAvatarURL] = stringOrNil(p.Avatar.Ptr())
	}
	return values
}

func ApplyProfileValues(row *domain.ProfileRow, values RowValues) error {
	for _, col := range values.Columns() {
		v := values[col]
		var err error
		switch col {
		case query.ColumnID:
			err = assign(&row.ID, v, col)
		case query.ColumnName:
			err = assign(&row.Name, v, col)
		case query.ColumnEmail:
			err = assign(&row.Email, v, col)
		case query.ColumnRole:
			err = assign(&row.Role, v, col)
		case query.ColumnPhone:
			err = assignNullable(&row.Phone, v, col)
		case query.ColumnAvatarURL:
			err = assignNullable(&row.AvatarURL, v, col)
		case query.ColumnVerified:
			err = assign(&row.Verified, v, col)
		case query.ColumnCreatedAt:
			err = assign(&row.CreatedAt, v, col)
		case query.ColumnUpdatedAt:
			err = assign(&row.UpdatedAt, v, col)
		default:
			err = fmt.Errorf("unknown profiles column %q", col)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
