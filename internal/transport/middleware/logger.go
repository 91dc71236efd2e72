package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/chartboard-backend/pkg/ctxutil"
)

// Logger writes one access-log record per request. It must sit inside Auth
// so the acting user is known.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rt := newResponseTracker(w)

			next.ServeHTTP(rt, r)

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rt.status),
				slog.Int64("bytes", rt.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if p, ok := ctxutil.PrincipalFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("user_id", p.UserID.String()))
				if p.Dev {
					attrs = append(attrs, slog.Bool("dev_principal", true))
				}
			}

			logger.LogAttrs(ctx, accessLevel(rt.status), "http.request", attrs...)
		})
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
