package middleware

import (
	"budget-server/src/errs"
	"budget-server/src/util"
	"net/http"
)

// ReadOnlyMiddleware rejects anything but GET, HEAD and OPTIONS when enabled.
func ReadOnlyMiddleware(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				util.WriteError(w, errs.NewForbiddenError("Read-only mode: only GET requests are allowed"))
			}
		})
	}
}
