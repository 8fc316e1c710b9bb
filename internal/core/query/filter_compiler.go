package query

import (
	"househunt-service/internal/core/domain"

	"github.com/google/uuid"
)

// CompilePropertyFilters строит выборку для списка объявлений.
// available = true добавляется всегда, даже без фильтра. Сортировка: сначала новые.
func CompilePropertyFilters(filters *domain.SearchFilters) Spec {
	spec := New(CollectionProperties)
	spec.Where(Eq(ColumnAvailable, true))

	if filters != nil {
		// Город ИЛИ штат содержит подстроку
		if filters.Location != "" {
			spec.Where(
				Contains(ColumnCity, filters.Location),
				Contains(ColumnState, filters.Location),
			)
		}
		if filters.MinPrice > 0 {
			spec.Where(Gte(ColumnPrice, filters.MinPrice))
		}
		// Значение на уровне MaxPriceSentinel и выше означает "без ограничения"
		if filters.MaxPrice < domain.MaxPriceSentinel {
			spec.Where(Lte(ColumnPrice, filters.MaxPrice))
		}
		if filters.Bedrooms > 0 {
			spec.Where(Gte(ColumnBedrooms, filters.Bedrooms))
		}
		if filters.PropertyType != "" {
			spec.Where(Eq(ColumnType, string(filters.PropertyType)))
		}
		// false ничего не исключает
		if filters.Furnished {
			spec.Where(Eq(ColumnFurnished, true))
		}
		if filters.PetFriendly {
			spec.Where(Eq(ColumnPetFriendly, true))
		}
		if filters.Parking {
			spec.Where(Eq(ColumnParking, true))
		}
	}

	spec.OrderBy(ColumnCreatedAt, true)
	return *spec
}

// OwnedPropertiesSpec - все объявления владельца, включая снятые с публикации
func OwnedPropertiesSpec(ownerID uuid.UUID) Spec {
	spec := New(CollectionProperties)
	spec.Where(Eq(ColumnOwnerID, ownerID))
	spec.OrderBy(ColumnCreatedAt, true)
	return *spec
}

// CompileInquiryVisibility - обращения, которые создал сам пользователь,
// или обращения по его объявлениям. Пустой ownedPropertyIDs дает только первые.
func CompileInquiryVisibility(callerID uuid.UUID, ownedPropertyIDs []uuid.UUID) Spec {
	spec := New(CollectionInquiries)
	if len(ownedPropertyIDs) > 0 {
		ids := make([]uuid.UUID, len(ownedPropertyIDs))
		copy(ids, ownedPropertyIDs)
		spec.Where(
			Eq(ColumnRenterID, callerID),
			In(ColumnPropertyID, ids),
		)
	} else {
		spec.Where(Eq(ColumnRenterID, callerID))
	}
	spec.OrderBy(ColumnCreatedAt, true)
	return *spec
}
