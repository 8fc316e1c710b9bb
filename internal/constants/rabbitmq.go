package constants

// Обменник по умолчанию (переопределяется RABBITMQ_EXCHANGE)
const (
	DefaultInquiryExchange = "househunt_exchange"
	ExchangeKindDirect     = "direct"
)

// Ключи маршрутизации событий по обращениям
const (
	RoutingKeyInquiryCreated       = "inquiry.created"
	RoutingKeyInquiryStatusChanged = "inquiry.status_changed"
)

// Заголовки сообщений
const (
	HeaderTraceID      = "x-trace-id"
	HeaderEventType    = "x-event-type"
	HeaderEventVersion = "x-event-version"
)
