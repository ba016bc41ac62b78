package models

// Session — запись об аутентифицированном операторе.
//
// Инвариант: сессия либо отсутствует целиком, либо присутствует целиком
// (user + оба токена); частичных состояний не бывает. Создаётся успешным
// login/register, обновляется по месту при правке профиля или подтверждении
// e-mail, уничтожается явным logout либо обнаружением истёкшего access-токена
// на гейте.
type Session struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// WithUser возвращает копию сессии с заменённым пользователем.
// Токены сохраняются; используется для read-merge-write при правке профиля.
func (s Session) WithUser(u User) Session {
	s.User = u
	return s
}
