package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-admin-gateway/internal/clients"
	apierrors "github.com/pribylovaa/go-admin-gateway/internal/errors"
)

// Profile возвращает профиль текущего оператора с бэкенда и освежает
// пользователя в сессии (read-merge-write: токены не трогаются).
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.Clients.Auth.Profile(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if cur := h.Sessions.Current(); cur != nil {
		if err := h.Sessions.Update(r.Context(), cur.WithUser(*u)); err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, u)
}

// UploadAvatar пробрасывает загрузку бэкенду без разбора тела
// и вливает пользователя с новым аватаром в сессию.
func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	u, err := h.Clients.Auth.UploadAvatar(r.Context(), r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	cur := h.Sessions.Current()
	if cur == nil {
		apierrors.WriteError(w, r, clients.ErrUnauthenticated)
		return
	}

	if err := h.Sessions.Update(r.Context(), cur.WithUser(*u)); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

type updateProfileRequest struct {
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// UpdateProfile правит профиль на бэкенде и вливает обновлённого
// пользователя в существующую сессию. Частичного API у стора нет,
// поэтому сессия пересобирается целиком из текущей (read-merge-write).
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in updateProfileRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	u, err := h.Clients.Auth.UpdateProfile(r.Context(), clients.UpdateProfileInput{
		Name:   in.Name,
		Phone:  in.Phone,
		Avatar: in.Avatar,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	cur := h.Sessions.Current()
	if cur == nil {
		// Гейт не пропустил бы запрос без сессии; сюда можно попасть только
		// если logout случился между проверкой и обработкой.
		apierrors.WriteError(w, r, clients.ErrUnauthenticated)
		return
	}

	if err := h.Sessions.Update(r.Context(), cur.WithUser(*u)); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}
