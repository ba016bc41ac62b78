package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-admin-gateway/internal/clients"
	apierrors "github.com/pribylovaa/go-admin-gateway/internal/errors"
)

// Home — корневая страница дашборда: отдаёт текущего оператора,
// остальные данные фронт забирает отдельными вызовами.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	cur := h.Sessions.Current()
	if cur == nil {
		apierrors.WriteError(w, r, clients.ErrUnauthenticated)
		return
	}

	writeJSON(w, http.StatusOK, cur.User)
}

// Unauthorized — страница отказа в доступе: сюда гейт уводит операторов
// без админ-роли. Содержимое фиксированное, исходный путь не переносится.
func (h *Handlers) Unauthorized(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "admin role required",
	})
}
