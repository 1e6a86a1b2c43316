package entities

// Kind identifica o tipo de entidade alvo de um favorito
type Kind string

const (
	KindPlanet    Kind = "planet"
	KindVehicle   Kind = "vehicle"
	KindCharacter Kind = "character"
)

// kindResources mapeia cada tipo para o nome do recurso usado em mensagens
var kindResources = map[Kind]string{
	KindPlanet:    "Planet",
	KindVehicle:   "Vehicle",
	KindCharacter: "Character",
}

// Kinds retorna os tipos de favorito na ordem em que são listados
func Kinds() []Kind {
	return []Kind{KindPlanet, KindVehicle, KindCharacter}
}

// Resource retorna o nome do recurso alvo ("Planet", "Vehicle", "Character")
func (k Kind) Resource() string {
	return kindResources[k]
}

// TargetField retorna o nome do campo que referencia o alvo ("planet_id", ...)
func (k Kind) TargetField() string {
	return string(k) + "_id"
}

// IsValid verifica se o tipo é conhecido
func (k Kind) IsValid() bool {
	_, ok := kindResources[k]
	return ok
}

// Favorite é uma linha de junção entre um usuário e uma entidade do catálogo
type Favorite struct {
	ID       uint
	Kind     Kind
	UserID   uint
	TargetID uint
}
