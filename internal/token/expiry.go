// token отвечает за разбор access-токена на стороне шлюза.
//
// Подпись здесь сознательно не проверяется: выпускающий бэкенд считается
// честным, а проверка нужна только чтобы вовремя заметить протухшую сессию.
// Любая ошибка разбора трактуется как «истёк» (fail closed).
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired сообщает, истёк ли access-токен к моменту now.
//
// Поведение:
//   - пустой или некорректный токен (не три сегмента, битый base64/JSON,
//     отсутствующий или нечисловой exp) -> true;
//   - иначе сравнение в секундах: now >= exp -> true (граница считается истечением).
func Expired(raw string, now time.Time) bool {
	if raw == "" {
		return true
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return now.Unix() >= exp.Unix()
}
