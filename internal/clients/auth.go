package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pribylovaa/go-admin-gateway/internal/models"
)

// AuthClient — вызовы auth-части бэкенда: аутентификация, верификация
// e-mail и профиль. Bearer-токен для защищённых вызовов подставляет
// транспорт из контекста (interceptors.CtxAuthToken).
type AuthClient struct {
	base  *url.URL
	httpc *http.Client
}

// RegisterInput — параметры регистрации.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileInput — изменяемые поля профиля. Пустые строки бэкенд
// трактует как «не менять».
type UpdateProfileInput struct {
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func (c *AuthClient) session(op string, p authPayload) (*models.Session, error) {
	s, err := p.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrInternal, err)
	}

	return &s, nil
}

func (c *AuthClient) user(op string, p userPayload) (*models.User, error) {
	u, err := p.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrInternal, err)
	}

	return &u, nil
}

// Login обменивает учётные данные на сессию {user, accessToken, refreshToken}.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "clients.AuthClient.Login"

	in := map[string]string{"email": email, "password": password}

	var env dataEnvelope[authPayload]
	if err := doJSON(ctx, c.httpc, http.MethodPost, joinPath(c.base, "login"), in, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.session(op, env.Data)
}

// Register создаёт учётную запись и сразу возвращает сессию.
func (c *AuthClient) Register(ctx context.Context, in RegisterInput) (*models.Session, error) {
	const op = "clients.AuthClient.Register"

	var env dataEnvelope[authPayload]
	if err := doJSON(ctx, c.httpc, http.MethodPost, joinPath(c.base, "register"), in, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.session(op, env.Data)
}

// ForgotPassword запускает восстановление пароля (письмо со ссылкой).
func (c *AuthClient) ForgotPassword(ctx context.Context, email string) error {
	const op = "clients.AuthClient.ForgotPassword"

	in := map[string]string{"email": email}
	if err := doJSON(ctx, c.httpc, http.MethodPost, joinPath(c.base, "forgot-password"), in, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ResetPassword завершает восстановление по одноразовому токену из письма.
func (c *AuthClient) ResetPassword(ctx context.Context, resetToken, password string) error {
	const op = "clients.AuthClient.ResetPassword"

	in := map[string]string{"token": resetToken, "password": password}
	if err := doJSON(ctx, c.httpc, http.MethodPost, joinPath(c.base, "reset-password"), in, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SendVerificationEmail просит бэкенд отправить письмо с кодом подтверждения.
func (c *AuthClient) SendVerificationEmail(ctx context.Context) error {
	const op = "clients.AuthClient.SendVerificationEmail"

	if err := doJSON(ctx, c.httpc, http.MethodPost, joinPath(c.base, "send-verification-email"), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// VerifyEmail подтверждает e-mail кодом и возвращает обновлённую сессию.
func (c *AuthClient) VerifyEmail(ctx context.Context, code string) (*models.Session, error) {
	const op = "clients.AuthClient.VerifyEmail"

	in := map[string]string{"code": code}

	var env dataEnvelope[authPayload]
	if err := doJSON(ctx, c.httpc, http.MethodPost, joinPath(c.base, "verify-email"), in, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.session(op, env.Data)
}

// Profile возвращает профиль текущего пользователя.
func (c *AuthClient) Profile(ctx context.Context) (*models.User, error) {
	const op = "clients.AuthClient.Profile"

	var env dataEnvelope[userPayload]
	if err := doJSON(ctx, c.httpc, http.MethodGet, joinPath(c.base, "profile"), nil, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.user(op, env.Data)
}

// UploadAvatar передаёт содержимое загрузки бэкенду как есть (multipart
// проксируется без разбора) и возвращает пользователя с новым URL аватара.
func (c *AuthClient) UploadAvatar(ctx context.Context, contentType string, body io.Reader) (*models.User, error) {
	const op = "clients.AuthClient.UploadAvatar"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinPath(c.base, "upload-avatar").String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s: %w", op, ErrDeadlineExceeded)
		}

		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s: %w", op, errorFromStatus(resp.StatusCode))
	}

	var env dataEnvelope[userPayload]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: %w: decode response: %s", op, ErrInternal, err)
	}

	return c.user(op, env.Data)
}

// UpdateProfile меняет поля профиля и возвращает обновлённого пользователя.
func (c *AuthClient) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	const op = "clients.AuthClient.UpdateProfile"

	var env dataEnvelope[userPayload]
	if err := doJSON(ctx, c.httpc, http.MethodPut, joinPath(c.base, "update"), in, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.user(op, env.Data)
}
