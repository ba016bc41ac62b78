package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pribylovaa/go-admin-gateway/internal/clients/interceptors"
	"github.com/pribylovaa/go-admin-gateway/internal/gate"
	logctx "github.com/pribylovaa/go-admin-gateway/internal/pkg/log"
	"github.com/pribylovaa/go-admin-gateway/internal/session"
)

// Protect — гейт защищённых маршрутов. На каждый запрос читает сессию,
// прогоняет её через gate.Decide и либо пропускает запрос дальше, либо
// отвечает 302 на целевой путь решения.
//
// Побочный эффект: при истёкшем access-токене (Decision.ClearSession)
// сессия разлогинивается здесь, до редиректа. Ошибка хранилища при этом
// не блокирует редирект — память стора уже очищена.
//
// При пропуске access-токен сессии кладётся в контекст по ключу
// interceptors.CtxAuthToken: транспорт апстрим-клиентов подставит его
// в Authorization.
func Protect(store *session.Store, req gate.Requirements) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := store.Current()
			d := gate.Decide(s, req, time.Now().UTC(), requestedPath(r))

			if d.ClearSession {
				if err := store.Logout(r.Context()); err != nil {
					logctx.From(r.Context()).Warn("expired_session_clear_failed",
						slog.String("err", err.Error()),
					)
				}
			}

			if d.Action == gate.ActionRedirect {
				http.Redirect(w, r, redirectLocation(d), http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), interceptors.CtxAuthToken, s.AccessToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PublicOnly — гейт «только для гостей»: аутентифицированного оператора
// уводит с login/register/forgot/reset страниц на главную.
func PublicOnly(store *session.Store) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d := gate.DecidePublic(store.Current()); d.Action == gate.ActionRedirect {
				http.Redirect(w, r, d.Target, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestedPath — исходный путь с query, переносится в редирект
// для возврата после login/verify.
func requestedPath(r *http.Request) string {
	p := r.URL.Path
	if r.URL.RawQuery != "" {
		p += "?" + r.URL.RawQuery
	}
	return p
}

// redirectLocation — целевой путь решения; исходный путь уходит
// в query-параметр from.
func redirectLocation(d gate.Decision) string {
	if d.ReturnTo == "" {
		return d.Target
	}
	return d.Target + "?from=" + url.QueryEscape(d.ReturnTo)
}
