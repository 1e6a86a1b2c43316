package services

import (
	"context"
	errs "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/errors"
	"github.com/rafabene/starwars-api/internal/domain/ports"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
	"github.com/rafabene/starwars-api/internal/domain/valueobjects"
)

// validate mantém o cache das structs; uma instância por processo
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Erros reportam o nome do campo JSON ("duration_day"), não o da struct
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requireFields aplica a regra de campos obrigatórios sobre um input com
// campos ponteiro: nil significa que a chave não veio no payload.
func requireFields(input any, fields valueobjects.FieldSet) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errs.As(err, &validationErrors) {
		return err
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		missing = append(missing, fieldErr.Field())
	}
	return errors.MissingFields(fields.String(), missing)
}

// storeError converte o erro devolvido por um repositório ou pelo commit.
// Erros de domínio passam intactos.
func storeError(err error, resource string, id uint) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsDomainError(err); ok {
		return err
	}

	switch {
	case errs.Is(err, repositories.ErrDuplicateKey):
		return errors.New(errors.ErrAlreadyExists, "error.conflict", map[string]any{"Resource": resource})
	case errs.Is(err, repositories.ErrReferenced):
		return errors.HasDependents(resource, strings.ToLower(resource), id)
	case errs.Is(err, repositories.ErrRecordNotFound):
		return errors.NotFound(resource, id)
	default:
		return errors.StoreFailure(err)
	}
}

// logFailure registra apenas falhas de armazenamento; violações de regra são respostas normais
func logFailure(logger ports.Logger, operation string, err error) {
	if errs.Is(err, errors.ErrStoreFailure) {
		logger.Error(operation+" failed", "error", err)
	}
}

func nameInUse(kind string) error {
	return errors.New(errors.ErrAlreadyExists, "error.name_in_use", map[string]any{"Kind": kind})
}

// findActiveUser aplica as regras de existência e usuário ativo, nessa ordem
func findActiveUser(ctx context.Context, repo repositories.UserRepository, id uint) (*entities.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound(userResource, id)
	}
	if !user.IsActive {
		return nil, errors.UserDeactivated(id)
	}
	return user, nil
}
