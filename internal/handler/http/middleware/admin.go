package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !ok || !admin {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
