package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
)

// VehicleRepository implementa repositories.VehicleRepository
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) repositories.VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	model := vehicleToModel(vehicle)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	vehicle.ID = model.ID
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uint) (*entities.Vehicle, error) {
	return r.findOne(lockingDB(ctx, r.db).Where("vehicle_id = ?", id))
}

func (r *VehicleRepository) FindByName(ctx context.Context, name string) (*entities.Vehicle, error) {
	return r.findOne(getDB(ctx, r.db).Where("name = ?", name))
}

func (r *VehicleRepository) findOne(query *gorm.DB) (*entities.Vehicle, error) {
	var model VehicleModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return vehicleToEntity(&model), nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	return translateError(getDB(ctx, r.db).Save(vehicleToModel(vehicle)).Error)
}

func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&VehicleModel{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]*entities.Vehicle, error) {
	var models []*VehicleModel
	if err := getDB(ctx, r.db).Order("vehicle_id").Find(&models).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*entities.Vehicle, 0, len(models))
	for _, model := range models {
		vehicles = append(vehicles, vehicleToEntity(model))
	}
	return vehicles, nil
}

func vehicleToModel(vehicle *entities.Vehicle) *VehicleModel {
	return &VehicleModel{
		ID:            vehicle.ID,
		Name:          vehicle.Name,
		Crew:          vehicle.Crew,
		Model:         vehicle.Model,
		Length:        vehicle.Length,
		CargoCapacity: vehicle.CargoCapacity,
	}
}

func vehicleToEntity(model *VehicleModel) *entities.Vehicle {
	return &entities.Vehicle{
		ID:            model.ID,
		Name:          model.Name,
		Crew:          model.Crew,
		Model:         model.Model,
		Length:        model.Length,
		CargoCapacity: model.CargoCapacity,
	}
}
