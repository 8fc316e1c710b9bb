package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService проверяет и выпускает HS256 токены с полями user_id/email/role
type TokenService struct {
	signingKey []byte
	issuer     string
	now        func() time.Time
}

func NewTokenService(signingKey, issuer string) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	if issuer == "" {
		return nil, fmt.Errorf("JWT issuer cannot be empty")
	}
	return &TokenService{signingKey: []byte(signingKey), issuer: issuer, now: time.Now}, nil
}

type jwtCustomClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

func (s *TokenService) GenerateToken(ctx context.Context, identity domain.Identity, ttl time.Duration) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "GenerateToken",
		"user_id":   identity.UserID.String(),
	})

	if identity.IsZero() {
		return "", fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if !identity.Role.IsValid() {
		return "", fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, identity.Role)
	}
	if ttl <= 0 {
		return "", fmt.Errorf("%w: ttl must be positive", domain.ErrInvalidInput)
	}

	now := s.now()
	claims := &jwtCustomClaims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		serviceLogger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	serviceLogger.Debug("Token generated", port.Fields{"ttl": ttl.String()})
	return signed, nil
}

// ValidateToken возвращает identity из токена. Любая проблема с токеном -> domain.ErrTokenInvalid.
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Identity, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "ValidateToken",
	})

	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			serviceLogger.Warn("Token has expired", nil)
		} else {
			serviceLogger.Warn("Invalid token", port.Fields{"reason": err.Error()})
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		serviceLogger.Error("Token was parsed without error, but claims type assertion failed", nil, nil)
		return nil, domain.ErrTokenInvalid
	}

	identity := domain.Identity{UserID: claims.UserID, Email: claims.Email, Role: domain.Role(claims.Role)}
	if identity.IsZero() || !identity.Role.IsValid() {
		serviceLogger.Warn("Token carries an unusable identity", port.Fields{"role": claims.Role})
		return nil, domain.ErrTokenInvalid
	}

	return &identity, nil
}
