package entities

// Vehicle representa um veículo do catálogo
type Vehicle struct {
	ID            uint
	Name          string
	Crew          *int64
	Model         *string
	Length        *int64
	CargoCapacity *int64
}
