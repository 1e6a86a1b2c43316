package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/starwars-api/internal/handlers/middleware"
	"github.com/rafabene/starwars-api/internal/infrastructure/i18n"
)

// T traduz key no idioma escolhido pelo middleware de i18n.
// Fora dele (testes de handler isolados) a chave volta como está.
func T(c *gin.Context, key string, params ...map[string]any) string {
	service, ok := c.Value(middleware.I18nServiceContextKey).(*i18n.Service)
	if !ok {
		return key
	}
	return service.T(Language(c, service.GetDefaultLanguage()), key, params...)
}

// Language devolve o idioma da requisição ou fallback quando não há um
func Language(c *gin.Context, fallback string) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return fallback
}
