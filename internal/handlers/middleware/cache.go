package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/starwars-api/internal/domain/ports"
)

// CacheStatusHeader indica HIT ou MISS nas respostas cacheáveis
const CacheStatusHeader = "X-Cache"

// ResponseStore guarda respostas de GET. As chaves incluem a geração atual;
// Bump avança a geração e invalida tudo o que foi guardado antes.
type ResponseStore interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Bump(ctx context.Context) error
}

type cachedResponse struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder copia o corpo enquanto o repassa ao cliente
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serve GETs do store e invalida o cache após cada mutação
// bem-sucedida. Falhas do store só desligam o cache para a requisição.
func ResponseCache(store ResponseStore, logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		switch c.Request.Method {
		case http.MethodGet:
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			c.Next()
			if c.Writer.Status() < http.StatusBadRequest {
				if err := store.Bump(ctx); err != nil {
					logger.Warn("cache invalidation failed", "error", err)
				}
			}
			return
		default:
			c.Next()
			return
		}

		generation, err := store.Generation(ctx)
		if err != nil {
			logger.Warn("cache unavailable", "error", err)
			c.Next()
			return
		}

		key := fmt.Sprintf("%d:%s:%s", generation, languageOf(c), c.Request.URL.RequestURI())

		if payload, ok, err := store.Get(ctx, key); err == nil && ok {
			var cached cachedResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				logger.Debug("cache hit", "key", key)
				c.Header(CacheStatusHeader, "HIT")
				c.Data(http.StatusOK, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Header(CacheStatusHeader, "MISS")

		c.Next()

		if recorder.Status() != http.StatusOK {
			return
		}

		payload, err := json.Marshal(cachedResponse{
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := store.Set(ctx, key, payload); err != nil {
			logger.Warn("cache store failed", "error", err)
		}
	}
}

func languageOf(c *gin.Context) string {
	if lang, ok := c.Get(LanguageContextKey); ok {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return ""
}
