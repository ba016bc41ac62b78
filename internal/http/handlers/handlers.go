package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-admin-gateway/internal/clients"
	"github.com/pribylovaa/go-admin-gateway/internal/session"
)

// Handlers агрегирует зависимости (апстрим-клиенты и стор сессии).
type Handlers struct {
	Clients  *clients.Clients
	Sessions *session.Store
}

func New(c *clients.Clients, s *session.Store) *Handlers {
	return &Handlers{Clients: c, Sessions: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга -> 400 на выходе.
func errInvalidArgument() error {
	return clients.ErrInvalidArgument
}
