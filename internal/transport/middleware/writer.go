package middleware

import "net/http"

// responseTracker records what a handler wrote so outer layers can log it or
// decide whether a body can still be sent.
type responseTracker struct {
	http.ResponseWriter
	status  int
	written int64
	started bool
}

func newResponseTracker(w http.ResponseWriter) *responseTracker {
	return &responseTracker{ResponseWriter: w, status: http.StatusOK}
}

func (t *responseTracker) WriteHeader(code int) {
	if !t.started {
		t.status = code
		t.started = true
	}
	t.ResponseWriter.WriteHeader(code)
}

func (t *responseTracker) Write(b []byte) (int, error) {
	t.started = true
	n, err := t.ResponseWriter.Write(b)
	t.written += int64(n)
	return n, err
}

func (t *responseTracker) Unwrap() http.ResponseWriter { return t.ResponseWriter }
