package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
)

// PlanetRepository implementa repositories.PlanetRepository
type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) repositories.PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) Create(ctx context.Context, planet *entities.Planet) error {
	model := planetToModel(planet)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	planet.ID = model.ID
	return nil
}

func (r *PlanetRepository) FindByID(ctx context.Context, id uint) (*entities.Planet, error) {
	return r.findOne(lockingDB(ctx, r.db).Where("planet_id = ?", id))
}

func (r *PlanetRepository) FindByName(ctx context.Context, name string) (*entities.Planet, error) {
	return r.findOne(getDB(ctx, r.db).Where("name = ?", name))
}

func (r *PlanetRepository) findOne(query *gorm.DB) (*entities.Planet, error) {
	var model PlanetModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return planetToEntity(&model), nil
}

func (r *PlanetRepository) Update(ctx context.Context, planet *entities.Planet) error {
	return translateError(getDB(ctx, r.db).Save(planetToModel(planet)).Error)
}

func (r *PlanetRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&PlanetModel{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrRecordNotFound
	}
	return nil
}

func (r *PlanetRepository) List(ctx context.Context) ([]*entities.Planet, error) {
	var models []*PlanetModel
	if err := getDB(ctx, r.db).Order("planet_id").Find(&models).Error; err != nil {
		return nil, err
	}

	planets := make([]*entities.Planet, 0, len(models))
	for _, model := range models {
		planets = append(planets, planetToEntity(model))
	}
	return planets, nil
}

func planetToModel(planet *entities.Planet) *PlanetModel {
	return &PlanetModel{
		ID:          planet.ID,
		Name:        planet.Name,
		Diameter:    planet.Diameter,
		Population:  planet.Population,
		DurationDay: planet.DurationDay,
		Terrain:     planet.Terrain,
	}
}

func planetToEntity(model *PlanetModel) *entities.Planet {
	return &entities.Planet{
		ID:          model.ID,
		Name:        model.Name,
		Diameter:    model.Diameter,
		Population:  model.Population,
		DurationDay: model.DurationDay,
		Terrain:     model.Terrain,
	}
}
