package models

import (
	"time"

	"github.com/google/uuid"
)

// News — запись новостной ленты, которой управляет дашборд.
type News struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	NewsLink  string    `json:"news_link"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
