package contextkeys

import (
	"context"

	"househunt-service/internal/core/domain"
)

type identityKeyType struct{}

var identityKey = identityKeyType{}

// ContextWithIdentity кладет проверенного пользователя в контекст запроса.
// Дальше REST-обработчик достает его и явно передает в use case.
func ContextWithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok || identity.IsZero() {
		return domain.Identity{}, false
	}
	return identity, true
}
