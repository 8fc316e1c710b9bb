package domain

// MaxPriceSentinel - верхняя граница ползунка цены в UI.
// maxPrice >= MaxPriceSentinel трактуется как "без верхней границы",
// поэтому реальный фильтр "не дороже 10000" неотличим от значения по умолчанию.
const MaxPriceSentinel = 10000

// SearchFilters - фильтр поиска объявлений. Не сохраняется.
// Собирать его нужно от DefaultSearchFilters(): у нулевого значения MaxPrice=0,
// и это честный фильтр price <= 0, а не "без верхней границы".
type SearchFilters struct {
	Location     string       `json:"location"`
	MinPrice     float64      `json:"minPrice"`
	MaxPrice     float64      `json:"maxPrice"`
	Bedrooms     int          `json:"bedrooms"`
	PropertyType PropertyType `json:"propertyType"`
	Furnished    bool         `json:"furnished"`
	PetFriendly  bool         `json:"petFriendly"`
	Parking      bool         `json:"parking"`
}

// DefaultSearchFilters - начальное состояние формы фильтров
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		MinPrice: 0,
		MaxPrice: MaxPriceSentinel,
	}
}
