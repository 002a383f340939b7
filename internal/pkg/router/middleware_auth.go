package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/pkg/jwt"
)

func middlewareAuthentication(verifier jwt.JWT, public map[string][]string) Middleware {
	skip := make(map[string]struct{})
	for method, routes := range public {
		for _, route := range routes {
			skip[method+" "+route] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.Method+" "+routeOf(r)]; ok {
				next.ServeHTTP(w, r)
				return
			}

			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(p[1])
			if errors.Is(err, jwt.ErrTokenExpired) {
				writeJSON(w, errorResponse{Message: "Token expired"}, http.StatusUnauthorized)
				return
			}
			if err != nil {
				writeJSON(w, errorResponse{Message: "Invalid token"}, http.StatusUnauthorized)
				return
			}

			ctx := jwt.SetAuth(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
