package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/contracts"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/port"
)

const maxBodyBytes = 1 << 20

// envelope - общий формат всех ответов API
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondWithJSON отправляет успешный ответ {"success":true,"data":...}
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	writeEnvelope(w, code, envelope{Success: true, Data: payload})
}

// WriteJSONError отправляет {"success":false,"error":...}
func WriteJSONError(w http.ResponseWriter, code int, message string) {
	writeEnvelope(w, code, envelope{Success: false, Error: message})
}

func writeEnvelope(w http.ResponseWriter, code int, body envelope) {
	response, err := json.Marshal(body)
	if err != nil {
		http.Error(w, `{"success":false,"error":"failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondError переводит ошибку use case в HTTP-статус. Текст внутренних ошибок наружу не уходит.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		contextkeys.LoggerFromContext(r.Context()).Error("Request failed", err, nil)
	}
	WriteJSONError(w, status, message)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrInquiryNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, rootMessage(err)
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, domain.ErrUnauthenticated.Error()
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// rootMessage - текст самой глубокой ошибки в цепочке ("property not found")
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// decodeBody проверяет тело по JSON-схеме и только потом разбирает его в dst
func decodeBody(r *http.Request, contract string, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("%w: failed to read body: %v", domain.ErrInvalidInput, err)
	}
	if len(body) > maxBodyBytes {
		return fmt.Errorf("%w: body is too large", domain.ErrInvalidInput)
	}
	if err := contracts.ValidateRequest(contract, contracts.V1, body); err != nil {
		contextkeys.LoggerFromContext(r.Context()).Debug("Request body rejected", port.Fields{"contract": contract, "reason": err.Error()})
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
