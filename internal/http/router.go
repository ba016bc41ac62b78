package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-admin-gateway/internal/clients"
	"github.com/pribylovaa/go-admin-gateway/internal/gate"
	"github.com/pribylovaa/go-admin-gateway/internal/http/handlers"
	"github.com/pribylovaa/go-admin-gateway/internal/http/middleware"
	"github.com/pribylovaa/go-admin-gateway/internal/session"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(cl *clients.Clients, store *session.Store, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(cl, store)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, store)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, store)
	return root
}

// registerRoutes — единая точка регистрации всех эндпойнтов.
// Каждая группа несёт свой гейт; требования повторяют карту маршрутов
// дашборда: auth-экраны только для гостей, verify-email/unauthorized
// доступны любой живой сессии, всё остальное — верифицированным админам.
func registerRoutes(r chi.Router, h *handlers.Handlers, store *session.Store) {
	// Гости: аутентифицированного оператора уводим на главную.
	r.Group(func(g chi.Router) {
		g.Use(middleware.PublicOnly(store))

		g.Post("/auth/login", h.Login)
		g.Post("/auth/register", h.Register)
		g.Post("/auth/forgot-password", h.ForgotPassword)
		g.Post("/auth/reset-password", h.ResetPassword)
	})

	// Живая сессия, без требований к верификации и роли.
	r.Group(func(g chi.Router) {
		g.Use(middleware.Protect(store, gate.Requirements{}))

		g.Post("/auth/send-verification-email", h.SendVerificationEmail)
		g.Post("/auth/verify-email", h.VerifyEmail)
		g.Post("/auth/logout", h.Logout)
		g.Get("/unauthorized", h.Unauthorized)
	})

	// Верифицированный админ.
	r.Group(func(g chi.Router) {
		g.Use(middleware.Protect(store, gate.DefaultRequirements()))

		// dashboard
		g.Get("/", h.Home)

		// profile
		g.Get("/profile", h.Profile)
		g.Put("/profile", h.UpdateProfile)
		g.Post("/profile/avatar", h.UploadAvatar)

		// news
		g.Get("/news", h.ListNews)
		g.Get("/news/{id}", h.GetNewsByID)
		g.Post("/news", h.CreateNews)
		g.Put("/news/{id}", h.UpdateNews)
		g.Delete("/news/{id}", h.DeleteNews)
	})
}
