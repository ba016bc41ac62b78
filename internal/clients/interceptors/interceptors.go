// interceptors — обёртки http.RoundTripper для исходящих вызовов к REST-бэкенду.
// Цепочка собирается в clients.New: metadata -> timeout -> logging.
package interceptors

import "net/http"

type CtxKey string

const (
	CtxRequestID CtxKey = "request_id"
	CtxAuthToken CtxKey = "auth_token"
)

// roundTripperFunc — адаптер функции под http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
