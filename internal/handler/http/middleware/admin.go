package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/auth"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/staff"
	"github.com/sunshine-dental/clinic-backend-go/internal/handler/http/response"
)

// AdminOnly requires the ADMIN role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || staff.Role(role) != staff.RoleAdmin {
			response.HandleError(w, auth.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
