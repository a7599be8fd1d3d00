package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chanmix51/kaku/pkg/observability"
)

// Metrics records request counts and latencies per chi route pattern. The
// pattern is only known after routing, so the labels are read post-serve.
func Metrics(collector *observability.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if collector == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}

			collector.HTTPRequests.WithLabelValues(
				r.Method, route, strconv.Itoa(ww.Status()),
			).Inc()
			collector.HTTPDuration.WithLabelValues(r.Method, route).
				Observe(time.Since(start).Seconds())
		})
	}
}
