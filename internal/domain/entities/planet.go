package entities

// Planet representa um planeta do catálogo.
// Apenas Name é obrigatório no armazenamento; os campos numéricos são opcionais.
type Planet struct {
	ID          uint
	Name        string
	Diameter    *int64
	Population  *int64
	DurationDay *int64
	Terrain     *string
}
