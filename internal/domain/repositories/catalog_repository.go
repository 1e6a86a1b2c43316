package repositories

import (
	"context"

	"github.com/rafabene/starwars-api/internal/domain/entities"
)

// PlanetRepository define a persistência de planetas
type PlanetRepository interface {
	Create(ctx context.Context, planet *entities.Planet) error
	FindByID(ctx context.Context, id uint) (*entities.Planet, error)
	FindByName(ctx context.Context, name string) (*entities.Planet, error)
	Update(ctx context.Context, planet *entities.Planet) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Planet, error)
}

// VehicleRepository define a persistência de veículos
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entities.Vehicle) error
	FindByID(ctx context.Context, id uint) (*entities.Vehicle, error)
	FindByName(ctx context.Context, name string) (*entities.Vehicle, error)
	Update(ctx context.Context, vehicle *entities.Vehicle) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Vehicle, error)
}

// CharacterRepository define a persistência de personagens
type CharacterRepository interface {
	Create(ctx context.Context, character *entities.Character) error
	FindByID(ctx context.Context, id uint) (*entities.Character, error)
	Update(ctx context.Context, character *entities.Character) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Character, error)
}
