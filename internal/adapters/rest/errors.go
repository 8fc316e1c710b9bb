package rest

import "errors"

var (
	errInvalidAuthHeader     = errors.New("invalid Authorization header format")
	errInvalidUserIDHeader   = errors.New("invalid X-User-ID header format")
	errInvalidUserRoleHeader = errors.New("invalid X-User-Role header")
)
