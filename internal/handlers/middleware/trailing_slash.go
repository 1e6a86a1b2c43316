package middleware

import (
	"net/http"
	"strings"
)

// StripTrailingSlash trata /planet/ como /planet antes do roteamento do Gin,
// sem redirecionar. Rotas do swagger ficam de fora.
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if len(path) > 1 && strings.HasSuffix(path, "/") && !strings.HasPrefix(path, "/swagger/") {
			trimmed := strings.TrimRight(path, "/")
			if trimmed == "" {
				trimmed = "/"
			}
			r.URL.Path = trimmed
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}
