package errors

import (
	"errors"
	"fmt"
)

// Tipos de erro de negócio.
// Os handlers usam errors.Is com estes valores para escolher o status HTTP.
var (
	ErrNotFound        = errors.New("not_found")
	ErrMissingFields   = errors.New("missing_fields")
	ErrAlreadyExists   = errors.New("already_exists")
	ErrUserDeactivated = errors.New("user_deactivated")
	ErrHasDependents   = errors.New("has_dependents")
	ErrAlreadyInactive = errors.New("already_inactive")
	ErrStoreFailure    = errors.New("store_failure")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeNotFound        = "/problems/not-found"
	ProblemTypeValidation      = "/problems/validation-error"
	ProblemTypeConflict        = "/problems/conflict"
	ProblemTypeUserDeactivated = "/problems/user-deactivated"
	ProblemTypeHasDependents   = "/problems/has-dependents"
	ProblemTypeAlreadyInactive = "/problems/already-inactive"
	ProblemTypeInternal        = "/problems/internal-error"
)

// DomainError representa um erro de domínio com contexto adicional.
// MessageID é a chave de tradução (internal/infrastructure/i18n/locales/*.json)
// e Params alimenta o template da mensagem.
type DomainError struct {
	Kind      error
	MessageID string
	Params    map[string]any
	Detail    string
	Err       error
}

func (e *DomainError) Error() string {
	msg := e.Kind.Error() + ": " + e.MessageID
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrNotFound) sobre um DomainError
func (e *DomainError) Is(target error) bool {
	return e.Kind == target
}

// New cria um DomainError do tipo kind com mensagem própria
func New(kind error, messageID string, params map[string]any) *DomainError {
	return &DomainError{
		Kind:      kind,
		MessageID: messageID,
		Params:    params,
	}
}

// NotFound indica que o recurso com o id informado não existe
func NotFound(resource string, id any) *DomainError {
	return &DomainError{
		Kind:      ErrNotFound,
		MessageID: "error.not_found",
		Params:    map[string]any{"Resource": resource, "ID": id},
	}
}

// MissingFields indica que o payload não trouxe todos os campos obrigatórios.
// fields é o conjunto exigido; missing lista os ausentes.
func MissingFields(fields string, missing []string) *DomainError {
	e := &DomainError{
		Kind:      ErrMissingFields,
		MessageID: "error.missing_fields",
		Params:    map[string]any{"Fields": fields},
	}
	if len(missing) > 0 {
		e.Detail = fmt.Sprintf("missing: %v", missing)
	}
	return e
}

// UserDeactivated indica que a operação foi bloqueada porque o usuário está inativo
func UserDeactivated(id uint) *DomainError {
	return &DomainError{
		Kind:      ErrUserDeactivated,
		MessageID: "error.user_deactivated",
		Params:    map[string]any{"ID": id},
	}
}

// HasDependents indica que a remoção foi bloqueada por favoritos que referenciam o recurso
func HasDependents(resource, kind string, id uint) *DomainError {
	return &DomainError{
		Kind:      ErrHasDependents,
		MessageID: "error.has_dependents",
		Params:    map[string]any{"Resource": resource, "Kind": kind, "ID": id},
	}
}

// AlreadyInactive indica uma desativação redundante
func AlreadyInactive(id uint) *DomainError {
	return &DomainError{
		Kind:      ErrAlreadyInactive,
		MessageID: "error.already_inactive",
		Params:    map[string]any{"ID": id},
	}
}

// StoreFailure encapsula uma falha de persistência
func StoreFailure(err error) *DomainError {
	e := &DomainError{
		Kind:      ErrStoreFailure,
		MessageID: "error.store_failure",
		Err:       err,
	}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// AsDomainError extrai o DomainError de uma cadeia de erros
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// ProblemTypeOf retorna o tipo RFC 7807 correspondente ao erro
func ProblemTypeOf(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return ProblemTypeNotFound
	case errors.Is(err, ErrMissingFields):
		return ProblemTypeValidation
	case errors.Is(err, ErrAlreadyExists):
		return ProblemTypeConflict
	case errors.Is(err, ErrUserDeactivated):
		return ProblemTypeUserDeactivated
	case errors.Is(err, ErrHasDependents):
		return ProblemTypeHasDependents
	case errors.Is(err, ErrAlreadyInactive):
		return ProblemTypeAlreadyInactive
	default:
		return ProblemTypeInternal
	}
}
