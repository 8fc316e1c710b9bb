package domain

// Dictionaries - справочники для формы фильтров и смены статуса
type Dictionaries struct {
	PropertyTypes   []DictionaryItem `json:"propertyTypes"`
	InquiryStatuses []DictionaryItem `json:"inquiryStatuses"`
	Roles           []DictionaryItem `json:"roles"`
}

type DictionaryItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
