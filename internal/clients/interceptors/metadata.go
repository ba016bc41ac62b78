package interceptors

import "net/http"

// WithMetadata — добавляет в исходящий запрос заголовки:
//   - X-Request-Id (если есть в контексте),
//   - Authorization: Bearer <token> (если есть в контексте и не задан явно),
//   - User-Agent (если передан параметром).
func WithMetadata(next http.RoundTripper, userAgent string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		// Запрос клонируется: RoundTripper не должен мутировать оригинал.
		r = r.Clone(r.Context())

		if v := r.Context().Value(CtxRequestID); v != nil {
			if rid, _ := v.(string); rid != "" {
				r.Header.Set("X-Request-Id", rid)
			}
		}
		if r.Header.Get("Authorization") == "" {
			if v := r.Context().Value(CtxAuthToken); v != nil {
				if tok, _ := v.(string); tok != "" {
					r.Header.Set("Authorization", "Bearer "+tok)
				}
			}
		}
		if userAgent != "" {
			r.Header.Set("User-Agent", userAgent)
		}

		return next.RoundTrip(r)
	})
}
