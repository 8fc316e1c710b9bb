package constants

// Заголовки HTTP
const (
	HeaderXTraceID  = "X-Trace-ID"
	HeaderXUserID   = "X-User-ID"
	HeaderXUserRole = "X-User-Role"
	HeaderXUserMail = "X-User-Email"
)
