package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-admin-gateway/internal/models"
)

// NewsClient — CRUD-вызовы новостной части бэкенда.
type NewsClient struct {
	base  *url.URL
	httpc *http.Client
}

// NewsInput — поля создания/правки новости.
type NewsInput struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	NewsLink string `json:"newsLink"`
	Active   bool   `json:"active"`
}

func (c *NewsClient) one(op string, p newsPayload) (*models.News, error) {
	n, err := p.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrInternal, err)
	}

	return &n, nil
}

// List возвращает все новости.
func (c *NewsClient) List(ctx context.Context) ([]models.News, error) {
	const op = "clients.NewsClient.List"

	var env dataEnvelope[[]newsPayload]
	if err := doJSON(ctx, c.httpc, http.MethodGet, joinPath(c.base, "news"), nil, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.News, 0, len(env.Data))
	for _, p := range env.Data {
		n, err := p.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %s", op, ErrInternal, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// Get возвращает новость по идентификатору.
func (c *NewsClient) Get(ctx context.Context, id uuid.UUID) (*models.News, error) {
	const op = "clients.NewsClient.Get"

	var env dataEnvelope[newsPayload]
	if err := doJSON(ctx, c.httpc, http.MethodGet, joinPath(c.base, "news", id.String()), nil, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.one(op, env.Data)
}

// Create создаёт новость.
func (c *NewsClient) Create(ctx context.Context, in NewsInput) (*models.News, error) {
	const op = "clients.NewsClient.Create"

	var env dataEnvelope[newsPayload]
	if err := doJSON(ctx, c.httpc, http.MethodPost, joinPath(c.base, "news"), in, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.one(op, env.Data)
}

// Update правит новость целиком.
func (c *NewsClient) Update(ctx context.Context, id uuid.UUID, in NewsInput) (*models.News, error) {
	const op = "clients.NewsClient.Update"

	var env dataEnvelope[newsPayload]
	if err := doJSON(ctx, c.httpc, http.MethodPut, joinPath(c.base, "news", id.String()), in, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.one(op, env.Data)
}

// Delete удаляет новость.
func (c *NewsClient) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "clients.NewsClient.Delete"

	if err := doJSON(ctx, c.httpc, http.MethodDelete, joinPath(c.base, "news", id.String()), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
