package port

// Fields - структурированные данные для лога
type Fields map[string]interface{}

// LoggerPort отделяет ядро от конкретной реализации логгера.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	// Error записывает ошибку вместе с объектом error.
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)
	// WithFields возвращает логгер с уже добавленными полями (trace_id, component и т.п.).
	WithFields(fields Fields) LoggerPort
}
