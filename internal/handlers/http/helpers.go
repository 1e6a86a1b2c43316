package http

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/starwars-api/internal/domain/errors"
	"github.com/rafabene/starwars-api/internal/handlers/dto"
)

// parseID lê um id do path. Valores não numéricos respondem 404, como um id inexistente.
func parseID(c *gin.Context, param, resource string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		dto.WriteError(c, errors.NotFound(resource, raw))
		return 0, false
	}
	return uint(id), true
}

// bindBody decodifica o corpo JSON campo a campo. Um corpo ausente ou que não
// seja um objeto JSON conta como nenhum campo enviado; uma chave com valor do
// tipo errado conta como ausente sem descartar as demais.
func bindBody[T any](c *gin.Context) T {
	var req T

	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		return req
	}

	v := reflect.ValueOf(&req).Elem()
	if v.Kind() != reflect.Struct {
		return req
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		raw, ok := fields[name]
		if !ok || name == "" || name == "-" {
			continue
		}

		value := reflect.New(t.Field(i).Type)
		if err := json.Unmarshal(raw, value.Interface()); err != nil {
			continue
		}
		v.Field(i).Set(value.Elem())
	}
	return req
}
