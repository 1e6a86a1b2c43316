package services

import (
	"context"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/errors"
	"github.com/rafabene/starwars-api/internal/domain/ports"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
	"github.com/rafabene/starwars-api/internal/domain/valueobjects"
)

const planetResource = "Planet"

// PlanetService contém as regras de planetas
type PlanetService struct {
	planetRepo   repositories.PlanetRepository
	favoriteRepo repositories.FavoriteRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewPlanetService cria um novo PlanetService
func NewPlanetService(
	planetRepo repositories.PlanetRepository,
	favoriteRepo repositories.FavoriteRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PlanetService {
	return &PlanetService{
		planetRepo:   planetRepo,
		favoriteRepo: favoriteRepo,
		uow:          uow,
		logger:       logger,
	}
}

// PlanetInput representa os dados para criar ou substituir um planeta
type PlanetInput struct {
	Name        *string `json:"name" validate:"required"`
	Diameter    *int64  `json:"diameter" validate:"required"`
	Population  *int64  `json:"population" validate:"required"`
	DurationDay *int64  `json:"duration_day" validate:"required"`
	Terrain     *string `json:"terrain" validate:"required"`
}

func (s *PlanetService) ListPlanets(ctx context.Context) ([]*entities.Planet, error) {
	planets, err := s.planetRepo.List(ctx)
	if err != nil {
		err = errors.StoreFailure(err)
		logFailure(s.logger, "list planets", err)
		return nil, err
	}
	return planets, nil
}

func (s *PlanetService) GetPlanet(ctx context.Context, id uint) (*entities.Planet, error) {
	planet, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		err = errors.StoreFailure(err)
		logFailure(s.logger, "get planet", err)
		return nil, err
	}
	if planet == nil {
		return nil, errors.NotFound(planetResource, id)
	}
	return planet, nil
}

// CreatePlanet cria um planeta; o nome é único
func (s *PlanetService) CreatePlanet(ctx context.Context, input PlanetInput) (*entities.Planet, error) {
	var planet *entities.Planet

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkName(ctx, input.Name, 0); err != nil {
			return err
		}
		if err := requireFields(input, valueobjects.PlanetFields); err != nil {
			return err
		}

		planet = &entities.Planet{}
		applyPlanetInput(planet, input)
		return s.planetRepo.Create(ctx, planet)
	})
	if err != nil {
		err = storeError(err, planetResource, 0)
		logFailure(s.logger, "create planet", err)
		return nil, err
	}

	s.logger.Info("planet created", "planet_id", planet.ID)
	return planet, nil
}

// UpdatePlanet substitui todos os campos do planeta
func (s *PlanetService) UpdatePlanet(ctx context.Context, id uint, input PlanetInput) (*entities.Planet, error) {
	var planet *entities.Planet

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		planet, err = s.planetRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if planet == nil {
			return errors.NotFound(planetResource, id)
		}

		if err := s.checkName(ctx, input.Name, id); err != nil {
			return err
		}
		if err := requireFields(input, valueobjects.PlanetFields); err != nil {
			return err
		}

		applyPlanetInput(planet, input)
		return s.planetRepo.Update(ctx, planet)
	})
	if err != nil {
		err = storeError(err, planetResource, id)
		logFailure(s.logger, "update planet", err)
		return nil, err
	}

	s.logger.Info("planet updated", "planet_id", id)
	return planet, nil
}

// DeletePlanet remove o planeta se nenhum favorito o referenciar
func (s *PlanetService) DeletePlanet(ctx context.Context, id uint) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		planet, err := s.planetRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if planet == nil {
			return errors.NotFound(planetResource, id)
		}

		dependents, err := s.favoriteRepo.CountByTarget(ctx, entities.KindPlanet, id)
		if err != nil {
			return err
		}
		if dependents > 0 {
			return errors.HasDependents(planetResource, string(entities.KindPlanet), id)
		}

		return s.planetRepo.Delete(ctx, id)
	})
	if err != nil {
		err = storeError(err, planetResource, id)
		logFailure(s.logger, "delete planet", err)
		return err
	}

	s.logger.Info("planet deleted", "planet_id", id)
	return nil
}

// checkName rejeita um nome já usado por outro planeta (self = id do próprio, ou 0)
func (s *PlanetService) checkName(ctx context.Context, name *string, self uint) error {
	if name == nil {
		return nil
	}
	existing, err := s.planetRepo.FindByName(ctx, *name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return nameInUse(string(entities.KindPlanet))
	}
	return nil
}

func applyPlanetInput(planet *entities.Planet, input PlanetInput) {
	planet.Name = *input.Name
	planet.Diameter = input.Diameter
	planet.Population = input.Population
	planet.DurationDay = input.DurationDay
	planet.Terrain = input.Terrain
}
