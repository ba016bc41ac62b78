package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pribylovaa/go-admin-gateway/internal/clients"
	apierrors "github.com/pribylovaa/go-admin-gateway/internal/errors"
	logctx "github.com/pribylovaa/go-admin-gateway/internal/pkg/log"
	"github.com/pribylovaa/go-admin-gateway/internal/pkg/redact"
)

// Токены наружу не отдаются: они живут в сессии шлюза,
// фронт получает только пользователя.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	s, err := h.Clients.Auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		logctx.From(r.Context()).Warn("login_failed",
			slog.String("email", redact.Email(in.Email)),
		)
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Sessions.Update(r.Context(), *s); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, s.User)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	s, err := h.Clients.Auth.Register(r.Context(), clients.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Sessions.Update(r.Context(), *s); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, s.User)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in forgotPasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Clients.Auth.ForgotPassword(r.Context(), in.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in resetPasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Clients.Auth.ResetPassword(r.Context(), in.Token, in.Password); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.Clients.Auth.SendVerificationEmail(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type verifyEmailRequest struct {
	Code string `json:"code"`
}

// VerifyEmail подтверждает e-mail и обновляет сессию целиком:
// бэкенд возвращает ту же личность с выставленным флагом верификации.
func (h *Handlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var in verifyEmailRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	s, err := h.Clients.Auth.VerifyEmail(r.Context(), in.Code)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Sessions.Update(r.Context(), *s); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, s.User)
}
