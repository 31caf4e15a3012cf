package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	msgNotFoundRoute = "маршрут не найден"

	// maxBodyBytes ограничение размера тела запроса
	maxBodyBytes = 1 << 20
)

// ErrEmptyBody тело запроса отсутствует
var ErrEmptyBody = errors.New("empty request body")

// exposeErrors включает детали внутренних ошибок в ответах (environment = development)
var exposeErrors atomic.Bool

// SetExposeErrors переключает вывод деталей внутренних ошибок
func SetExposeErrors(expose bool) {
	exposeErrors.Store(expose)
}

// Envelope общий формат ответа API
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DecodeJSON декодирует тело запроса. Неизвестные поля считаются ошибкой.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}

	return nil
}

// RespondJSON отправляет успешный ответ с данными
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeEnvelope(w, status, Envelope{Success: true, Data: data})
}

// RespondSuccess отправляет успешный ответ с данными и сообщением
func RespondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeEnvelope(w, status, Envelope{Success: true, Data: data, Message: message})
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, Envelope{Success: false, Error: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondInternalErrorWithDetails 500; детали ошибки только в режиме development
func RespondInternalErrorWithDetails(w http.ResponseWriter, err error) {
	env := Envelope{Success: false, Error: msgInternalError}
	if exposeErrors.Load() && err != nil {
		env.Message = err.Error()
	}
	writeEnvelope(w, http.StatusInternalServerError, env)
}

// NotFoundHandler отвечает 404 на неизвестные маршруты
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondNotFound(w, fmt.Sprintf("%s: %s %s", msgNotFoundRoute, r.Method, r.URL.Path))
	})
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
