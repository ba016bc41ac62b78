package interceptors

import (
	"context"
	"io"
	"net/http"
	"time"
)

// WithTimeout навешивает таймаут d на исходящий вызов, если у контекста
// ещё нет дедлайна. Существующий дедлайн не переопределяется.
//
// Контракт:
//  1. d <= 0 — запрос уходит как есть;
//  2. у ctx уже есть deadline — оставляем как есть;
//  3. иначе — context.WithTimeout(ctx, d); cancel откладывается до закрытия
//     тела ответа, чтобы не оборвать его чтение.
func WithTimeout(next http.RoundTripper, d time.Duration) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if d <= 0 {
			return next.RoundTrip(r)
		}
		if _, ok := r.Context().Deadline(); ok {
			return next.RoundTrip(r)
		}

		ctx, cancel := context.WithTimeout(r.Context(), d)

		resp, err := next.RoundTrip(r.Clone(ctx))
		if err != nil {
			cancel()
			return nil, err
		}

		resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
		return resp, nil
	})
}

// cancelOnClose отменяет контекст вызова при закрытии тела ответа.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
