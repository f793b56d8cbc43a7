package controller

import "net/http"

const allowedMethods = "GET, HEAD, OPTIONS"

// WithCORS returns a middleware for a read-only API. It sets CORS headers on
// every response, answers OPTIONS preflight requests with 204 No Content and
// rejects any other non read method with 405.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Cache-Control, X-Request-Id")
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)

		switch r.Method {
		case http.MethodGet, http.MethodHead:
			next.ServeHTTP(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Header().Set("Allow", allowedMethods)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})
}
