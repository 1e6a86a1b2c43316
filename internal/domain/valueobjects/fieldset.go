package valueobjects

import "strings"

// FieldSet é o conjunto ordenado de campos obrigatórios de uma operação.
// A ordem é a mesma exibida nas mensagens de erro.
type FieldSet []string

var (
	UserFields      = FieldSet{"user_name", "email", "password"}
	PlanetFields    = FieldSet{"name", "diameter", "population", "duration_day", "terrain"}
	VehicleFields   = FieldSet{"name", "crew", "model", "length", "cargo_capacity"}
	CharacterFields = FieldSet{"name", "skin_color", "birth_year", "gender", "height"}
)

// String retorna os campos entre aspas separados por vírgula: "name", "crew"
func (f FieldSet) String() string {
	quoted := make([]string, len(f))
	for i, field := range f {
		quoted[i] = `"` + field + `"`
	}
	return strings.Join(quoted, ", ")
}

// Contains verifica se o campo pertence ao conjunto
func (f FieldSet) Contains(field string) bool {
	for _, candidate := range f {
		if candidate == field {
			return true
		}
	}
	return false
}
