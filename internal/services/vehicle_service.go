package services

import (
	"context"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/errors"
	"github.com/rafabene/starwars-api/internal/domain/ports"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
	"github.com/rafabene/starwars-api/internal/domain/valueobjects"
)

const vehicleResource = "Vehicle"

// VehicleService contém as regras de veículos
type VehicleService struct {
	vehicleRepo   repositories.VehicleRepository
	favoriteRepo repositories.FavoriteRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewVehicleService cria um novo VehicleService
func NewVehicleService(
	vehicleRepo repositories.VehicleRepository,
	favoriteRepo repositories.FavoriteRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:   vehicleRepo,
		favoriteRepo: favoriteRepo,
		uow:          uow,
		logger:       logger,
	}
}

// VehicleInput representa os dados para criar ou substituir um veículo
type VehicleInput struct {
	Name          *string `json:"name" validate:"required"`
	Crew          *int64  `json:"crew" validate:"required"`
	Model         *string `json:"model" validate:"required"`
	Length        *int64  `json:"length" validate:"required"`
	CargoCapacity *int64  `json:"cargo_capacity" validate:"required"`
}

func (s *VehicleService) ListVehicles(ctx context.Context) ([]*entities.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		err = errors.StoreFailure(err)
		logFailure(s.logger, "list vehicles", err)
		return nil, err
	}
	return vehicles, nil
}

func (s *VehicleService) GetVehicle(ctx context.Context, id uint) (*entities.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		err = errors.StoreFailure(err)
		logFailure(s.logger, "get vehicle", err)
		return nil, err
	}
	if vehicle == nil {
		return nil, errors.NotFound(vehicleResource, id)
	}
	return vehicle, nil
}

// CreateVehicle cria um veículo; o nome é único
func (s *VehicleService) CreateVehicle(ctx context.Context, input VehicleInput) (*entities.Vehicle, error) {
	var vehicle *entities.Vehicle

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkName(ctx, input.Name, 0); err != nil {
			return err
		}
		if err := requireFields(input, valueobjects.VehicleFields); err != nil {
			return err
		}

		vehicle = &entities.Vehicle{}
		applyVehicleInput(vehicle, input)
		return s.vehicleRepo.Create(ctx, vehicle)
	})
	if err != nil {
		err = storeError(err, vehicleResource, 0)
		logFailure(s.logger, "create vehicle", err)
		return nil, err
	}

	s.logger.Info("vehicle created", "vehicle_id", vehicle.ID)
	return vehicle, nil
}

// UpdateVehicle substitui todos os campos do veículo
func (s *VehicleService) UpdateVehicle(ctx context.Context, id uint, input VehicleInput) (*entities.Vehicle, error) {
	var vehicle *entities.Vehicle

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		vehicle, err = s.vehicleRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return errors.NotFound(vehicleResource, id)
		}

		if err := s.checkName(ctx, input.Name, id); err != nil {
			return err
		}
		if err := requireFields(input, valueobjects.VehicleFields); err != nil {
			return err
		}

		applyVehicleInput(vehicle, input)
		return s.vehicleRepo.Update(ctx, vehicle)
	})
	if err != nil {
		err = storeError(err, vehicleResource, id)
		logFailure(s.logger, "update vehicle", err)
		return nil, err
	}

	s.logger.Info("vehicle updated", "vehicle_id", id)
	return vehicle, nil
}

// DeleteVehicle remove o veículo se nenhum favorito o referenciar
func (s *VehicleService) DeleteVehicle(ctx context.Context, id uint) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		vehicle, err := s.vehicleRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return errors.NotFound(vehicleResource, id)
		}

		dependents, err := s.favoriteRepo.CountByTarget(ctx, entities.KindVehicle, id)
		if err != nil {
			return err
		}
		if dependents > 0 {
			return errors.HasDependents(vehicleResource, string(entities.KindVehicle), id)
		}

		return s.vehicleRepo.Delete(ctx, id)
	})
	if err != nil {
		err = storeError(err, vehicleResource, id)
		logFailure(s.logger, "delete vehicle", err)
		return err
	}

	s.logger.Info("vehicle deleted", "vehicle_id", id)
	return nil
}

// checkName rejeita um nome já usado por outro veículo
func (s *VehicleService) checkName(ctx context.Context, name *string, self uint) error {
	if name == nil {
		return nil
	}
	existing, err := s.vehicleRepo.FindByName(ctx, *name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return nameInUse(string(entities.KindVehicle))
	}
	return nil
}

func applyVehicleInput(vehicle *entities.Vehicle, input VehicleInput) {
	vehicle.Name = *input.Name
	vehicle.Crew = input.Crew
	vehicle.Model = input.Model
	vehicle.Length = input.Length
	vehicle.CargoCapacity = input.CargoCapacity
}
