package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	token_adapter "househunt-service/internal/adapters/jwt"
	"househunt-service/internal/adapters/memory"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/port"
	"househunt-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentLogger struct{}

func (silentLogger) Info(string, port.Fields)                 {}
func (silentLogger) Warn(string, port.Fields)                 {}
func (silentLogger) Error(string, error, port.Fields)         {}
func (silentLogger) Debug(string, port.Fields)                {}
func (s silentLogger) WithFields(port.Fields) port.LoggerPort { return s }

type discardEvents struct{}

func (discardEvents) PublishInquiryCreated(context.Context, domain.InquiryCreatedEvent) error {
	return nil
}

func (discardEvents) PublishInquiryStatusChanged(context.Context, domain.InquiryStatusChangedEvent) error {
	return nil
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testAPI struct {
	t       *testing.T
	handler http.Handler
	tokens  *token_adapter.TokenService

	renter string
	owner  string
	admin  string
}

func newTestAPI(t *testing.T, trustGatewayHeaders bool) *testAPI {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	properties := memory.NewPropertyRepository(store)
	inquiries := memory.NewInquiryRepository(store)
	profiles := memory.NewProfileRepository(store)
	events := discardEvents{}

	_, err := usecase.NewSeedDemoDataUseCase(properties, profiles).Execute(ctx)
	require.NoError(t, err)

	tokens, err := token_adapter.NewTokenService("test-key", "househunt-auth")
	require.NoError(t, err)

	server := NewServer(ServerConfig{Port: "0"},
		NewPropertyHandler(
			usecase.NewFetchPropertiesUseCase(properties),
			usecase.NewGetPropertyUseCase(properties),
			usecase.NewFetchOwnerPropertiesUseCase(properties),
			usecase.NewCreatePropertyUseCase(properties, profiles),
			usecase.NewUpdatePropertyUseCase(properties),
			usecase.NewDeletePropertyUseCase(properties),
		),
		NewInquiryHandler(
			usecase.NewCreateInquiryUseCase(properties, inquiries, profiles, events),
			usecase.NewUpdateInquiryStatusUseCase(properties, inquiries, events),
			usecase.NewFetchInquiriesUseCase(properties, inquiries),
		),
		NewProfileHandler(usecase.NewGetProfileUseCase(profiles), usecase.NewUpdateProfileUseCase(profiles)),
		NewDictionariesHandler(usecase.NewGetDictionariesUseCase()),
		NewAuthMiddleware(tokens, trustGatewayHeaders),
		silentLogger{},
	)

	api := &testAPI{t: t, handler: server.Handler(), tokens: tokens}
	api.renter = api.token(usecase.DemoRenterID, "alice@example.com", domain.RoleRenter)
	api.owner = api.token(usecase.DemoOwnerID, "bob@example.com", domain.RoleOwner)
	api.admin = api.token(usecase.DemoAdminID, "admin@example.com", domain.RoleAdmin)
	return api
}

func (a *testAPI) token(id uuid.UUID, email string, role domain.Role) string {
	a.t.Helper()
	token, err := a.tokens.GenerateToken(context.Background(), domain.Identity{UserID: id, Email: email, Role: role}, time.Hour)
	require.NoError(a.t, err)
	return token
}

func (a *testAPI) do(method, path, token, body string, headers ...string) (*httptest.ResponseRecorder, apiResponse) {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec, resp
}

func decodeData[T any](t *testing.T, resp apiResponse) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Data, &v))
	return v
}

func TestFetchProperties(t *testing.T) {
	api := newTestAPI(t, false)

	rec, resp := api.do(http.MethodGet, "/api/v1/properties", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	all := decodeData[[]domain.Property](t, resp)
	require.Len(t, all, 4, "unavailable listing is hidden")
	assert.Equal(t, "Modern Downtown Apartment", all[0].Title)
	assert.Equal(t, "Bob Smith", all[0].OwnerName)

	rec, resp = api.do(http.MethodGet, "/api/v1/properties?location=NY&minPrice=2000&maxPrice=3000", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	filtered := decodeData[[]domain.Property](t, resp)
	require.Len(t, filtered, 1)
	assert.Equal(t, "New York", filtered[0].Location.City)

	_, resp = api.do(http.MethodGet, "/api/v1/properties?propertyType=house&petFriendly=true", "", "")
	houses := decodeData[[]domain.Property](t, resp)
	require.Len(t, houses, 1)
	assert.Equal(t, "Cozy Family House", houses[0].Title)

	_, resp = api.do(http.MethodGet, "/api/v1/properties?location=Atlantis", "", "")
	assert.Equal(t, "[]", string(resp.Data))
}

func TestFetchProperties_BadQuery(t *testing.T) {
	api := newTestAPI(t, false)

	for _, q := range []string{"bedrooms=abc", "minPrice=-1", "propertyType=castle", "parking=maybe"} {
		t.Run(q, func(t *testing.T) {
			rec, resp := api.do(http.MethodGet, "/api/v1/properties?"+q, "", "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGetProperty(t *testing.T) {
	api := newTestAPI(t, false)

	rec, resp := api.do(http.MethodGet, "/api/v1/properties/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)

	rec, resp = api.do(http.MethodGet, "/api/v1/properties/"+uuid.NewString(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "property not found", resp.Error)
}

const newListing = `{
	"title": "Loft", "description": "Bright loft", "type": "studio", "price": 1800,
	"location": {"address": "789 Art Street", "city": "Chicago", "state": "IL", "zipCode": "60601"},
	"bedrooms": 1, "bathrooms": 1, "area": 700, "amenities": ["Gym"]
}`

func TestCreateProperty_Access(t *testing.T) {
	api := newTestAPI(t, false)

	rec, resp := api.do(http.MethodPost, "/api/v1/properties", "", newListing)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)

	rec, _ = api.do(http.MethodPost, "/api/v1/properties", "garbage", newListing)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/properties", api.renter, newListing)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/properties", api.owner,
		`{"title": "Loft", "type": "studio", "price": 1800, "ownerId": "x",
		  "location": {"address": "a", "city": "b", "state": "c"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "ownerId is server managed")

	rec, resp = api.do(http.MethodPost, "/api/v1/properties", api.owner, newListing)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData[domain.Property](t, resp)
	assert.Equal(t, usecase.DemoOwnerID, created.OwnerID)
	assert.True(t, created.Available)
	assert.Equal(t, "Bob Smith", created.OwnerName)
}

func TestUpdateProperty_AvailabilityOnly(t *testing.T) {
	api := newTestAPI(t, false)

	_, resp := api.do(http.MethodPost, "/api/v1/properties", api.owner, newListing)
	created := decodeData[domain.Property](t, resp)
	path := "/api/v1/properties/" + created.ID.String()

	rec, _ := api.do(http.MethodPatch, path, api.renter, `{"available": false}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, resp = api.do(http.MethodPatch, path, api.owner, `{"available": false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeData[domain.Property](t, resp)
	assert.False(t, updated.Available)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Price, updated.Price)
	assert.Equal(t, created.Amenities, updated.Amenities)

	_, resp = api.do(http.MethodGet, "/api/v1/properties?location=Chicago", "", "")
	for _, p := range decodeData[[]domain.Property](t, resp) {
		assert.NotEqual(t, created.ID, p.ID)
	}

	_, resp = api.do(http.MethodGet, "/api/v1/me/properties", api.owner, "")
	ids := make([]uuid.UUID, 0)
	for _, p := range decodeData[[]domain.Property](t, resp) {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, created.ID)

	rec, _ = api.do(http.MethodPatch, path, api.owner, `{"createdAt": "2024-01-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProperty(t *testing.T) {
	api := newTestAPI(t, false)

	_, resp := api.do(http.MethodPost, "/api/v1/properties", api.owner, newListing)
	created := decodeData[domain.Property](t, resp)
	path := "/api/v1/properties/" + created.ID.String()

	rec, _ := api.do(http.MethodDelete, path, api.admin, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = api.do(http.MethodDelete, path, api.owner, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodGet, path, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInquiryFlow(t *testing.T) {
	api := newTestAPI(t, false)

	_, resp := api.do(http.MethodGet, "/api/v1/properties?location=NY", "", "")
	listing := decodeData[[]domain.Property](t, resp)[0]

	body := `{"propertyId": "` + listing.ID.String() + `", "message": "Is it still available?", "phone": "+1 555"}`
	rec, _ := api.do(http.MethodPost, "/api/v1/inquiries", api.owner, body)
	assert.Equal(t, http.StatusForbidden, rec.Code, "only renters send inquiries")

	rec, _ = api.do(http.MethodPost, "/api/v1/inquiries", api.renter,
		`{"propertyId": "`+uuid.NewString()+`", "message": "hello"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = api.do(http.MethodPost, "/api/v1/inquiries", api.renter, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	inquiry := decodeData[domain.Inquiry](t, resp)
	assert.Equal(t, domain.InquiryStatusPending, inquiry.Status)

	_, resp = api.do(http.MethodGet, "/api/v1/inquiries", api.owner, "")
	ownerView := decodeData[[]domain.Inquiry](t, resp)
	require.Len(t, ownerView, 1)
	assert.Equal(t, "Alice Johnson", ownerView[0].RenterName)
	assert.Equal(t, "alice@example.com", ownerView[0].RenterEmail)

	stranger := api.token(uuid.New(), "eve@example.com", domain.RoleOwner)
	_, resp = api.do(http.MethodGet, "/api/v1/inquiries", stranger, "")
	assert.Equal(t, "[]", string(resp.Data))

	statusPath := "/api/v1/inquiries/" + inquiry.ID.String() + "/status"
	rec, _ = api.do(http.MethodPatch, statusPath, api.renter, `{"status": "approved"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, resp = api.do(http.MethodPatch, statusPath, api.owner, `{"status": "archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)

	rec, resp = api.do(http.MethodPatch, statusPath, api.owner, `{"status": "approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.InquiryStatusApproved, decodeData[domain.Inquiry](t, resp).Status)

	rec, _ = api.do(http.MethodPatch, "/api/v1/inquiries/"+uuid.NewString()+"/status", api.admin, `{"status": "contacted"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile(t *testing.T) {
	api := newTestAPI(t, false)

	rec, resp := api.do(http.MethodGet, "/api/v1/me", api.owner, "")
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeData[domain.User](t, resp)
	assert.Equal(t, "Bob Smith", me.Name)
	assert.Equal(t, domain.RoleOwner, me.Role)

	rec, _ = api.do(http.MethodPatch, "/api/v1/me", api.owner, `{"role": "admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp = api.do(http.MethodPatch, "/api/v1/me", api.owner, `{"name": "Robert Smith", "phone": null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	me = decodeData[domain.User](t, resp)
	assert.Equal(t, "Robert Smith", me.Name)
	assert.Nil(t, me.Phone)
	assert.Equal(t, domain.RoleOwner, me.Role)

	rec, _ = api.do(http.MethodGet, "/api/v1/me", api.token(uuid.New(), "new@example.com", domain.RoleRenter), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGatewayHeaders(t *testing.T) {
	headers := []string{
		"X-User-ID", usecase.DemoRenterID.String(),
		"X-User-Role", "renter",
		"X-User-Email", "alice@example.com",
	}

	trusted := newTestAPI(t, true)
	rec, resp := trusted.do(http.MethodGet, "/api/v1/me", "", "", headers...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice Johnson", decodeData[domain.User](t, resp).Name)

	rec, _ = trusted.do(http.MethodGet, "/api/v1/me", "", "", "X-User-ID", "nope", "X-User-Role", "renter")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = trusted.do(http.MethodGet, "/api/v1/me", "", "", "X-User-ID", usecase.DemoRenterID.String(), "X-User-Role", "root")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	untrusted := newTestAPI(t, false)
	rec, _ = untrusted.do(http.MethodGet, "/api/v1/me", "", "", headers...)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDictionariesAndHealth(t *testing.T) {
	api := newTestAPI(t, false)

	rec, resp := api.do(http.MethodGet, "/api/v1/dictionaries", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	dictionaries := decodeData[domain.Dictionaries](t, resp)
	assert.Len(t, dictionaries.PropertyTypes, 4)
	assert.Len(t, dictionaries.InquiryStatuses, 4)

	rec, _ = api.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = api.do(http.MethodGet, "/api/v1/nothing-here", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}

func TestTraceIDIsEchoed(t *testing.T) {
	api := newTestAPI(t, false)
	traceID := uuid.NewString()

	rec, _ := api.do(http.MethodGet, "/api/v1/dictionaries", "", "", "X-Trace-ID", traceID)
	assert.Equal(t, traceID, rec.Header().Get("X-Trace-ID"))

	rec, _ = api.do(http.MethodGet, "/api/v1/dictionaries", "", "", "X-Trace-ID", "not-a-uuid")
	_, err := uuid.Parse(rec.Header().Get("X-Trace-ID"))
	assert.NoError(t, err)
}

func TestRecoverer_RespondsWithEnvelope(t *testing.T) {
	r := chi.NewRouter()
	r.Use(LoggerMiddleware(silentLogger{}), Recoverer)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	assert.False(t, resp.Success)
	assert.Equal(t, "internal server error", resp.Error)
}
