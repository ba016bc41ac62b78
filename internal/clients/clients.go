// clients — HTTP-клиенты REST-бэкенда (внешний коллаборатор шлюза).
//
// Ошибки апстрима нормализуются в sentinel-ошибки этого пакета;
// слой internal/errors маппит их обратно в HTTP-статусы для фронта.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pribylovaa/go-admin-gateway/internal/clients/interceptors"
	"github.com/pribylovaa/go-admin-gateway/internal/config"
)

var (
	// ErrInvalidArgument — бэкенд отверг параметры запроса. HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthenticated — неверные учётные данные либо невалидный/истёкший
	// токен. HTTP 401.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrPermissionDenied — операция запрещена для текущей роли. HTTP 403.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound — запись отсутствует. HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists — конфликт уникальности (например, занятый e-mail). HTTP 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnavailable — бэкенд недоступен или ответил 5xx. HTTP 503.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrDeadlineExceeded — вызов не уложился в дедлайн. HTTP 504.
	ErrDeadlineExceeded = errors.New("upstream deadline exceeded")

	// ErrInternal — прочие неожиданные ответы. HTTP 500.
	ErrInternal = errors.New("internal")
)

// Clients агрегирует клиенты апстримов.
type Clients struct {
	Auth *AuthClient
	News *NewsClient

	httpc *http.Client
}

// New собирает общий http.Client с цепочкой обёрток транспорта
// (metadata -> timeout -> logging) и клиенты всех апстримов.
func New(cfg config.Config, log *slog.Logger) (*Clients, error) {
	const op = "clients.New"

	authBase, err := parseBase(cfg.Upstream.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("%s: auth url: %w", op, err)
	}

	newsBase, err := parseBase(cfg.Upstream.NewsURL)
	if err != nil {
		return nil, fmt.Errorf("%s: news url: %w", op, err)
	}

	var rt http.RoundTripper = http.DefaultTransport
	rt = interceptors.WithLogging(rt, log)
	rt = interceptors.WithTimeout(rt, cfg.Timeouts.Upstream)
	rt = interceptors.WithMetadata(rt, "admin-gateway")

	httpc := &http.Client{Transport: rt}

	return &Clients{
		Auth:  &AuthClient{base: authBase, httpc: httpc},
		News:  &NewsClient{base: newsBase, httpc: httpc},
		httpc: httpc,
	}, nil
}

// Close сбрасывает пул соединений.
func (c *Clients) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

func parseBase(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("empty upstream url")
	}

	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream url %q: scheme and host are required", raw)
	}

	return u, nil
}

// doJSON выполняет вызов апстрима: сериализует in (если задан), проверяет
// статус и декодирует тело в out (если задан). Ошибки транспорта и статусы
// >= 400 маппятся в sentinel-ошибки пакета.
func doJSON(ctx context.Context, httpc *http.Client, method string, u *url.URL, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrDeadlineExceeded
		}

		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return errorFromStatus(resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %s", ErrInternal, err)
	}

	return nil
}

// errorFromStatus — маппинг HTTP-статуса апстрима в sentinel-ошибку.
func errorFromStatus(code int) error {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidArgument
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrPermissionDenied
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrAlreadyExists
	case http.StatusGatewayTimeout:
		return ErrDeadlineExceeded
	default:
		if code >= 500 {
			return ErrUnavailable
		}

		return ErrInternal
	}
}

// joinPath строит URL вызова от базового URL апстрима.
func joinPath(base *url.URL, parts ...string) *url.URL {
	u := *base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Join(parts, "/")
	return &u
}
