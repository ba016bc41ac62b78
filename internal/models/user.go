// models содержит доменные сущности admin-gateway.
// Эти типы используются слоями гейта, сессии, транспорта и апстрим-клиентов.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли, дающие доступ к административным разделам.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// User — учётная запись оператора дашборда.
// Avatar и Phone опциональны (пустая строка = не задано).
type User struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Avatar          string    `json:"avatar,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	IsEmailVerified bool      `json:"is_email_verified"`
	Roles           []string  `json:"roles"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsAdmin — true, если среди ролей есть admin или super-admin.
func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}

	for _, r := range u.Roles {
		if r == RoleAdmin || r == RoleSuperAdmin {
			return true
		}
	}

	return false
}
