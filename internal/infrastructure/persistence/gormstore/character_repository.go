package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
)

// CharacterRepository implementa repositories.CharacterRepository
type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) repositories.CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) Create(ctx context.Context, character *entities.Character) error {
	model := characterToModel(character)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	character.ID = model.ID
	return nil
}

func (r *CharacterRepository) FindByID(ctx context.Context, id uint) (*entities.Character, error) {
	var model CharacterModel

	db := lockingDB(ctx, r.db)
	if err := db.Where("character_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return characterToEntity(&model), nil
}

func (r *CharacterRepository) Update(ctx context.Context, character *entities.Character) error {
	return translateError(getDB(ctx, r.db).Save(characterToModel(character)).Error)
}

// Delete remove o personagem; os favoritos que o referenciam caem em cascata
func (r *CharacterRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&CharacterModel{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrRecordNotFound
	}
	return nil
}

func (r *CharacterRepository) List(ctx context.Context) ([]*entities.Character, error) {
	var models []*CharacterModel
	if err := getDB(ctx, r.db).Order("character_id").Find(&models).Error; err != nil {
		return nil, err
	}

	characters := make([]*entities.Character, 0, len(models))
	for _, model := range models {
		characters = append(characters, characterToEntity(model))
	}
	return characters, nil
}

func characterToModel(character *entities.Character) *CharacterModel {
	return &CharacterModel{
		ID:        character.ID,
		Name:      character.Name,
		SkinColor: character.SkinColor,
		BirthYear: character.BirthYear,
		Gender:    character.Gender,
		Height:    character.Height,
	}
}

func characterToEntity(model *CharacterModel) *entities.Character {
	return &entities.Character{
		ID:        model.ID,
		Name:      model.Name,
		SkinColor: model.SkinColor,
		BirthYear: model.BirthYear,
		Gender:    model.Gender,
		Height:    model.Height,
	}
}
