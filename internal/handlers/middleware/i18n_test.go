package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/starwars-api/internal/infrastructure/i18n"
)

func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	locales := fstest.MapFS{
		"en.json": {Data: []byte(`{"planet.created": "New planet created!"}`)},
		"es.json": {Data: []byte(`{"planet.created": "¡Nuevo planeta creado!"}`)},
	}

	service, err := i18n.NewService(locales, "en")
	if err != nil {
		t.Fatalf("failed to initialize i18n service: %v", err)
	}
	return service
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware := NewI18nMiddleware(setupTestI18n(t))

	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		expected       string
	}{
		{name: "query parameter", target: "/?lang=es", expected: "es"},
		{name: "Accept-Language header", target: "/", acceptLanguage: "es-AR,en;q=0.5", expected: "es"},
		{name: "query tem prioridade sobre o header", target: "/?lang=en", acceptLanguage: "es", expected: "en"},
		{name: "query não suportada cai no header", target: "/?lang=fr", acceptLanguage: "es", expected: "es"},
		{name: "sem preferência usa o padrão", target: "/", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.acceptLanguage != "" {
				c.Request.Header.Set("Accept-Language", tt.acceptLanguage)
			}

			middleware.DetectLanguage()(c)

			lang, exists := c.Get(LanguageContextKey)
			if !exists {
				t.Fatal("idioma não foi definido no contexto")
			}
			if lang != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, lang)
			}
			if got := w.Header().Get("Content-Language"); got != tt.expected {
				t.Errorf("Content-Language: esperava '%s', obteve '%s'", tt.expected, got)
			}
			if _, ok := c.Get(I18nServiceContextKey); !ok {
				t.Error("serviço i18n não foi definido no contexto")
			}
		})
	}
}

func TestI18nMiddleware_parseAcceptLanguage(t *testing.T) {
	middleware := NewI18nMiddleware(setupTestI18n(t))

	tests := []struct {
		name       string
		acceptLang string
		expected   string
	}{
		{name: "idioma único suportado", acceptLang: "es", expected: "es"},
		{name: "maior peso vence", acceptLang: "es;q=0.5,en;q=0.9", expected: "en"},
		{name: "empate mantém a ordem", acceptLang: "es,en", expected: "es"},
		{name: "região cai para o idioma base", acceptLang: "en-GB", expected: "en"},
		{name: "ignora não suportados", acceptLang: "fr,de;q=0.9,es;q=0.1", expected: "es"},
		{name: "q=0 exclui o idioma", acceptLang: "es;q=0", expected: ""},
		{name: "curinga é ignorado", acceptLang: "*", expected: ""},
		{name: "header vazio", acceptLang: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := middleware.parseAcceptLanguage(tt.acceptLang); got != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, got)
			}
		})
	}
}

func TestI18nMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware := NewI18nMiddleware(setupTestI18n(t))

	router := gin.New()
	router.Use(middleware.DetectLanguage())
	router.GET("/test", func(c *gin.Context) {
		lang := c.GetString(LanguageContextKey)
		service := c.MustGet(I18nServiceContextKey).(*i18n.Service)
		c.JSON(http.StatusOK, gin.H{"msg": service.T(lang, "planet.created")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Language", "es")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperava status 200, obteve %d", w.Code)
	}
	expected := `{"msg":"¡Nuevo planeta creado!"}`
	if w.Body.String() != expected {
		t.Errorf("esperava '%s', obteve '%s'", expected, w.Body.String())
	}
}
