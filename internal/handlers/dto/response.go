package dto

import (
	errs "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/starwars-api/internal/domain/errors"
)

// BaseURLContextKey guarda a URL base usada nos tipos RFC 7807
const BaseURLContextKey = "base_url"

// Response é o envelope de todas as respostas de sucesso
type Response struct {
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// ErrorResponse é o corpo de erro padrão
type ErrorResponse struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

// Respond escreve {msg, data} com a mensagem traduzida
func Respond(c *gin.Context, status int, key string, data any, params ...map[string]any) {
	c.JSON(status, Response{
		Msg:  T(c, key, params...),
		Data: data,
	})
}

// StatusOf mapeia o tipo do erro para o status HTTP
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errors.ErrMissingFields):
		return http.StatusBadRequest
	case errs.Is(err, errors.ErrAlreadyExists):
		return http.StatusConflict
	case errs.Is(err, errors.ErrUserDeactivated):
		return http.StatusConflict
	case errs.Is(err, errors.ErrHasDependents):
		return http.StatusBadRequest
	case errs.Is(err, errors.ErrAlreadyInactive):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError responde com o erro. Clientes que aceitam application/problem+json
// recebem um Problem Details (RFC 7807); os demais recebem {msg, error}.
func WriteError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg, detail := describe(c, err)

	if acceptsProblem(c) {
		problem := problems.NewDetailedProblem(status, msg)
		problem.Type = c.GetString(BaseURLContextKey) + errors.ProblemTypeOf(err)
		problem.Instance = c.Request.URL.Path

		c.Header("Content-Type", problems.ProblemMediaType)
		c.JSON(status, problem)
		return
	}

	c.JSON(status, ErrorResponse{Msg: msg, Error: detail})
}

func describe(c *gin.Context, err error) (msg, detail string) {
	de, ok := errors.AsDomainError(err)
	if !ok {
		return T(c, "error.internal"), err.Error()
	}
	return T(c, de.MessageID, de.Params), de.Detail
}

func acceptsProblem(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), problems.ProblemMediaType)
}
