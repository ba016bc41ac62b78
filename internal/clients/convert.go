package clients

import (
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-admin-gateway/internal/models"
)

// Wire-представления бэкенда (camelCase) и конвертация в доменные модели.

type userPayload struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Avatar          string    `json:"avatar,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	Roles           []string  `json:"roles"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type authPayload struct {
	User         userPayload `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

type newsPayload struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	NewsLink  string    `json:"newsLink"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// dataEnvelope — корневой объект ответов бэкенда: {"data": ...}.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func (p userPayload) toModel() (models.User, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:              id,
		Name:            p.Name,
		Email:           p.Email,
		Avatar:          p.Avatar,
		Phone:           p.Phone,
		IsEmailVerified: p.IsEmailVerified,
		Roles:           p.Roles,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

func (p authPayload) toModel() (models.Session, error) {
	u, err := p.User.toModel()
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{
		User:         u,
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
	}, nil
}

func (p newsPayload) toModel() (models.News, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return models.News{}, err
	}

	return models.News{
		ID:        id,
		Title:     p.Title,
		ImageURL:  p.ImageURL,
		NewsLink:  p.NewsLink,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}
