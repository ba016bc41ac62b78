package gate

import (
	"time"

	"github.com/pribylovaa/go-admin-gateway/internal/models"
)

// Пункты назначения редиректов. Login/VerifyEmail получают исходный путь
// для возврата после действия; Unauthorized и Home — фиксированные
// (редирект на исходный путь здесь зациклил бы гейт).
const (
	LoginPath        = "/login"
	VerifyEmailPath  = "/verify-email"
	UnauthorizedPath = "/unauthorized"
	HomePath         = "/"
)

// Action — исход решения гейта.
type Action int

const (
	// ActionAllow — пропустить запрос к защищённому содержимому.
	ActionAllow Action = iota
	// ActionRedirect — перенаправить на Decision.Target.
	ActionRedirect
)

// Requirements — требования маршрута, задаются слоем роутинга.
type Requirements struct {
	RequireAdmin         bool
	RequireEmailVerified bool
}

// DefaultRequirements — оба требования включены (значения по умолчанию маршрутов).
func DefaultRequirements() Requirements {
	return Requirements{RequireAdmin: true, RequireEmailVerified: true}
}

// Decision — результат решения гейта, чистый value object.
type Decision struct {
	Action Action
	// Target — путь редиректа (пуст при ActionAllow).
	Target string
	// ReturnTo — исходный путь для возврата после login/verify;
	// пуст для Unauthorized/Home.
	ReturnTo string
	// ClearSession — перед редиректом сессию нужно разлогинить
	// (выставляется только при истёкшем access-токене).
	ClearSession bool
}

func allow() Decision {
	return Decision{Action: ActionAllow}
}

func redirect(target, returnTo string) Decision {
	return Decision{Action: ActionRedirect, Target: target, ReturnTo: returnTo}
}

// Decide — решение защищённого маршрута. Проверки выполняются строго по
// порядку, первая сработавшая определяет исход:
//
//  1. нет аутентификации -> login (с исходным путём from);
//  2. access-токен истёк -> ClearSession + login (до проверок верификации и
//     ролей, чтобы протухшая сессия не добралась до закрытого содержимого);
//  3. требуется подтверждённый e-mail, а он не подтверждён -> verify-email;
//  4. требуется админ, а роли нет -> unauthorized (фиксированный путь);
//  5. иначе -> allow.
func Decide(s *models.Session, req Requirements, now time.Time, from string) Decision {
	snap := Evaluate(s, now)

	if !snap.Authenticated {
		return redirect(LoginPath, from)
	}

	if snap.Expired {
		d := redirect(LoginPath, from)
		d.ClearSession = true
		return d
	}

	if req.RequireEmailVerified && !snap.EmailVerified {
		return redirect(VerifyEmailPath, from)
	}

	if req.RequireAdmin && !snap.Admin {
		return redirect(UnauthorizedPath, "")
	}

	return allow()
}

// DecidePublic — решение маршрута «только для гостей» (login, register,
// forgot/reset-password): любая живая запись сессии, независимо от
// верификации и ролей, уводит на главную.
func DecidePublic(s *models.Session) Decision {
	if s != nil {
		return redirect(HomePath, "")
	}

	return allow()
}
