package middleware

import "net/http"

type requestInstrumenter interface {
	Instrument(next http.Handler) http.Handler
}

// Metrics records request count, latency and in-flight requests.
func Metrics(m requestInstrumenter) Middleware {
	return func(next http.Handler) http.Handler {
		return m.Instrument(next)
	}
}
