package middleware

import (
	"net/http"
	"time"
)

type requestObserver interface {
	ObserveRequest(route, method string, code int, elapsed time.Duration)
}

// Instrument reports each request under the route pattern it was registered with.
func Instrument(obs requestObserver, route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)
			obs.ObserveRequest(route, r.Method, sw.status, time.Since(start))
		})
	}
}
