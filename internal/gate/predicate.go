// gate реализует решение о допуске к странице дашборда.
//
// Пакет чистый: ни одна функция не ходит в сеть и не мутирует состояние.
// Побочные эффекты (logout при истёкшей сессии, сам HTTP-редирект)
// применяет транспортный слой по полям Decision.
package gate

import (
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-admin-gateway/internal/models"
	"github.com/pribylovaa/go-admin-gateway/internal/token"
)

// Snapshot — четыре признака авторизации, вычисленные из сессии.
type Snapshot struct {
	// Authenticated — сессия присутствует и содержит пользователя.
	Authenticated bool
	// Expired — access-токен истёк (или отсутствует/не разбирается).
	Expired bool
	// EmailVerified — e-mail пользователя подтверждён.
	EmailVerified bool
	// Admin — среди ролей есть admin или super-admin.
	Admin bool
}

// Evaluate вычисляет Snapshot по сессии (или её отсутствию) на момент now.
// Детерминированная функция без побочных эффектов.
func Evaluate(s *models.Session, now time.Time) Snapshot {
	if s == nil {
		return Snapshot{Expired: true}
	}

	return Snapshot{
		Authenticated: s.User.ID != uuid.Nil,
		Expired:       token.Expired(s.AccessToken, now),
		EmailVerified: s.User.IsEmailVerified,
		Admin:         s.User.IsAdmin(),
	}
}
