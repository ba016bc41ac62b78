package interceptors

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// WithLogging — логирование исходящих вызовов к бэкенду.
// Поведение:
//   - вытягивает X-Request-Id из заголовков (или генерирует новый и добавляет);
//   - пишет одну финальную запись уровня Info: msg="upstream", method, path,
//     status/err, dur.
//
// Безопасность: не логирует payload и чувствительные заголовки.
func WithLogging(next http.RoundTripper, base *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if base == nil {
		base = slog.Default()
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()

		rid := r.Header.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
			r = r.Clone(r.Context())
			r.Header.Set("X-Request-Id", rid)
		}

		l := base.With(
			slog.String("request_id", rid),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		resp, err := next.RoundTrip(r)

		attrs := []slog.Attr{slog.Duration("dur", time.Since(start))}
		if err != nil {
			attrs = append(attrs, slog.String("err", err.Error()))
		} else {
			attrs = append(attrs, slog.Int("status", resp.StatusCode))
		}

		l.LogAttrs(r.Context(), slog.LevelInfo, "upstream", attrs...)

		return resp, err
	})
}
