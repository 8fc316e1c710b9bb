package domain

import "errors"

// Ошибки, которые возвращают use case'ы. REST-слой превращает их в HTTP-статусы.
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrInquiryNotFound  = errors.New("inquiry not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrForbidden        = errors.New("operation is not permitted for this user")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidStatus    = errors.New("invalid inquiry status")
	ErrTokenInvalid     = errors.New("invalid jwt token")
)
