package middleware

import "net/http"

// Values sent on every relay response so browser clients can call the
// functions directly.
const (
	CORSAllowOrigin  = "*"
	CORSAllowHeaders = "authorization, x-client-info, apikey, content-type"
)

// CORS adds the relay's CORS headers to every response and answers OPTIONS
// preflight requests with an empty 200 before authentication runs.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", CORSAllowOrigin)
		w.Header().Set("Access-Control-Allow-Headers", CORSAllowHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
