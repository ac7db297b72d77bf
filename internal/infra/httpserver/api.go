package httpserver

import "net/http"

type Controller interface {
	AddRoutes(*http.ServeMux)
}

// Guard gates routes behind an authenticated session. Implementations decide
// what a session is; the server only composes handlers.
type Guard interface {
	RequireSession(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}
