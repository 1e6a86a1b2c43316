package entities

// Character representa um personagem do catálogo. O nome não é único.
type Character struct {
	ID        uint
	Name      string
	SkinColor *string
	BirthYear *string
	Gender    *string
	Height    *int64
}
