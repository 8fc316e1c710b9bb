package rest

import (
	"net/http"
	"strings"

	"househunt-service/internal/constants"
	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/port"

	"github.com/google/uuid"
)

// AuthMiddleware определяет вызывающего: по Bearer-токену или, если разрешено,
// по заголовкам X-User-*, которые проставил API gateway.
type AuthMiddleware struct {
	tokens              port.TokenServicePort
	trustGatewayHeaders bool
}

func NewAuthMiddleware(tokens port.TokenServicePort, trustGatewayHeaders bool) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, trustGatewayHeaders: trustGatewayHeaders}
}

// RequireIdentity пропускает дальше только запросы с проверенной идентичностью
func (m *AuthMiddleware) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		identity, err := m.identify(r)
		if err != nil {
			logger.Warn("Request is not authenticated", port.Fields{"reason": err.Error()})
			WriteJSONError(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := contextkeys.ContextWithLogger(r.Context(), logger.WithFields(port.Fields{"user_id": identity.UserID.String()}))
		ctx = contextkeys.ContextWithIdentity(ctx, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) identify(r *http.Request) (domain.Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		headerParts := strings.SplitN(authHeader, " ", 2)
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "Bearer") || headerParts[1] == "" {
			return domain.Identity{}, errInvalidAuthHeader
		}
		identity, err := m.tokens.ValidateToken(r.Context(), headerParts[1])
		if err != nil {
			return domain.Identity{}, domain.ErrTokenInvalid
		}
		return *identity, nil
	}

	if m.trustGatewayHeaders && r.Header.Get(constants.HeaderXUserID) != "" {
		return identityFromGatewayHeaders(r)
	}
	return domain.Identity{}, domain.ErrUnauthenticated
}

func identityFromGatewayHeaders(r *http.Request) (domain.Identity, error) {
	userID, err := uuid.Parse(r.Header.Get(constants.HeaderXUserID))
	if err != nil || userID == uuid.Nil {
		return domain.Identity{}, errInvalidUserIDHeader
	}
	role := domain.Role(r.Header.Get(constants.HeaderXUserRole))
	if !role.IsValid() {
		return domain.Identity{}, errInvalidUserRoleHeader
	}
	return domain.Identity{
		UserID: userID,
		Email:  r.Header.Get(constants.HeaderXUserMail),
		Role:   role,
	}, nil
}
