package rest

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/contracts"
	"househunt-service/internal/core/domain"
	usecases_port "househunt-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	fetchPropertiesUC      usecases_port.FetchPropertiesUseCase
	getPropertyUC          usecases_port.GetPropertyUseCase
	fetchOwnerPropertiesUC usecases_port.FetchOwnerPropertiesUseCase
	createPropertyUC       usecases_port.CreatePropertyUseCase
	updatePropertyUC       usecases_port.UpdatePropertyUseCase
	deletePropertyUC       usecases_port.DeletePropertyUseCase
}

func NewPropertyHandler(
	fetchPropertiesUC usecases_port.FetchPropertiesUseCase,
	getPropertyUC usecases_port.GetPropertyUseCase,
	fetchOwnerPropertiesUC usecases_port.FetchOwnerPropertiesUseCase,
	createPropertyUC usecases_port.CreatePropertyUseCase,
	updatePropertyUC usecases_port.UpdatePropertyUseCase,
	deletePropertyUC usecases_port.DeletePropertyUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		fetchPropertiesUC:      fetchPropertiesUC,
		getPropertyUC:          getPropertyUC,
		fetchOwnerPropertiesUC: fetchOwnerPropertiesUC,
		createPropertyUC:       createPropertyUC,
		updatePropertyUC:       updatePropertyUC,
		deletePropertyUC:       deletePropertyUC,
	}
}

// FetchProperties - GET /properties?location=&minPrice=&maxPrice=&bedrooms=&propertyType=&furnished=&petFriendly=&parking=
func (h *PropertyHandler) FetchProperties(w http.ResponseWriter, r *http.Request) {
	filters, err := parseSearchFilters(r.URL.Query())
	if err != nil {
		respondError(w, r, err)
		return
	}

	properties, err := h.fetchPropertiesUC.Execute(r.Context(), filters)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathUUID(w, r, "propertyID")
	if !ok {
		return
	}

	property, err := h.getPropertyUC.Execute(r.Context(), propertyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, property)
}

// FetchOwnerProperties - объявления текущего владельца, включая снятые с публикации
func (h *PropertyHandler) FetchOwnerProperties(w http.ResponseWriter, r *http.Request) {
	identity, _ := contextkeys.IdentityFromContext(r.Context())

	properties, err := h.fetchOwnerPropertiesUC.Execute(r.Context(), identity)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	identity, _ := contextkeys.IdentityFromContext(r.Context())

	var input domain.NewProperty
	if err := decodeBody(r, contracts.CreatePropertyRequest, &input); err != nil {
		respondError(w, r, err)
		return
	}

	property, err := h.createPropertyUC.Execute(r.Context(), identity, input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	identity, _ := contextkeys.IdentityFromContext(r.Context())
	propertyID, ok := pathUUID(w, r, "propertyID")
	if !ok {
		return
	}

	var patch domain.PropertyPatch
	if err := decodeBody(r, contracts.UpdatePropertyRequest, &patch); err != nil {
		respondError(w, r, err)
		return
	}

	property, err := h.updatePropertyUC.Execute(r.Context(), identity, propertyID, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	identity, _ := contextkeys.IdentityFromContext(r.Context())
	propertyID, ok := pathUUID(w, r, "propertyID")
	if !ok {
		return
	}

	if err := h.deletePropertyUC.Execute(r.Context(), identity, propertyID); err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"id": propertyID.String()})
}

var searchFilterKeys = []string{
	"location", "minPrice", "maxPrice", "bedrooms",
	"propertyType", "furnished", "petFriendly", "parking",
}

// parseSearchFilters возвращает nil, если ни одного параметра фильтра нет.
// Иначе отсутствующие параметры берутся из DefaultSearchFilters.
func parseSearchFilters(values url.Values) (*domain.SearchFilters, error) {
	present := false
	for _, key := range searchFilterKeys {
		if _, ok := values[key]; ok {
			present = true
			break
		}
	}
	if !present {
		return nil, nil
	}

	filters := domain.DefaultSearchFilters()
	filters.Location = values.Get("location")

	var err error
	if filters.MinPrice, err = floatParam(values, "minPrice", filters.MinPrice); err != nil {
		return nil, err
	}
	if filters.MaxPrice, err = floatParam(values, "maxPrice", filters.MaxPrice); err != nil {
		return nil, err
	}
	if raw := values.Get("bedrooms"); raw != "" {
		bedrooms, convErr := strconv.Atoi(raw)
		if convErr != nil || bedrooms < 0 {
			return nil, fmt.Errorf("%w: bedrooms must be a non-negative integer", domain.ErrInvalidInput)
		}
		filters.Bedrooms = bedrooms
	}
	if raw := values.Get("propertyType"); raw != "" && raw != "all" {
		filters.PropertyType = domain.PropertyType(raw)
		if !filters.PropertyType.IsValid() {
			return nil, fmt.Errorf("%w: unknown property type %q", domain.ErrInvalidInput, raw)
		}
	}
	for key, dst := range map[string]*bool{
		"furnished":   &filters.Furnished,
		"petFriendly": &filters.PetFriendly,
		"parking":     &filters.Parking,
	} {
		if *dst, err = boolParam(values, key); err != nil {
			return nil, err
		}
	}
	return &filters, nil
}

func floatParam(values url.Values, key string, fallback float64) (float64, error) {
	raw := values.Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
	}
	return v, nil
}

func boolParam(values url.Values, key string) (bool, error) {
	raw := values.Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", domain.ErrInvalidInput, key)
	}
	return v, nil
}

func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s format", param))
		return uuid.Nil, false
	}
	return id, true
}
