package services

import (
	"context"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/errors"
	"github.com/rafabene/starwars-api/internal/domain/ports"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
	"github.com/rafabene/starwars-api/internal/domain/valueobjects"
)

const characterResource = "Character"

// CharacterService contém as regras de personagens.
// Nomes não são únicos e a remoção não verifica favoritos.
type CharacterService struct {
	characterRepo repositories.CharacterRepository
	uow           ports.UnitOfWork
	logger        ports.Logger
}

func NewCharacterService(
	characterRepo repositories.CharacterRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CharacterService {
	return &CharacterService{
		characterRepo: characterRepo,
		uow:           uow,
		logger:        logger,
	}
}

type CharacterInput struct {
	Name      *string `json:"name" validate:"required"`
	SkinColor *string `json:"skin_color" validate:"required"`
	BirthYear *string `json:"birth_year" validate:"required"`
	Gender    *string `json:"gender" validate:"required"`
	Height    *int64  `json:"height" validate:"required"`
}

func (s *CharacterService) ListCharacters(ctx context.Context) ([]*entities.Character, error) {
	characters, err := s.characterRepo.List(ctx)
	if err != nil {
		err = errors.StoreFailure(err)
		logFailure(s.logger, "list characters", err)
		return nil, err
	}
	return characters, nil
}

func (s *CharacterService) GetCharacter(ctx context.Context, id uint) (*entities.Character, error) {
	character, err := s.characterRepo.FindByID(ctx, id)
	if err != nil {
		err = errors.StoreFailure(err)
		logFailure(s.logger, "get character", err)
		return nil, err
	}
	if character == nil {
		return nil, errors.NotFound(characterResource, id)
	}
	return character, nil
}

func (s *CharacterService) CreateCharacter(ctx context.Context, input CharacterInput) (*entities.Character, error) {
	if err := requireFields(input, valueobjects.CharacterFields); err != nil {
		return nil, err
	}

	character := &entities.Character{}
	applyCharacterInput(character, input)

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		return s.characterRepo.Create(ctx, character)
	})
	if err != nil {
		err = storeError(err, characterResource, 0)
		logFailure(s.logger, "create character", err)
		return nil, err
	}

	s.logger.Info("character created", "character_id", character.ID)
	return character, nil
}

func (s *CharacterService) UpdateCharacter(ctx context.Context, id uint, input CharacterInput) (*entities.Character, error) {
	var character *entities.Character

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		character, err = s.characterRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if character == nil {
			return errors.NotFound(characterResource, id)
		}
		if err := requireFields(input, valueobjects.CharacterFields); err != nil {
			return err
		}

		applyCharacterInput(character, input)
		return s.characterRepo.Update(ctx, character)
	})
	if err != nil {
		err = storeError(err, characterResource, id)
		logFailure(s.logger, "update character", err)
		return nil, err
	}

	s.logger.Info("character updated", "character_id", id)
	return character, nil
}

// DeleteCharacter remove o personagem incondicionalmente; seus favoritos saem junto
func (s *CharacterService) DeleteCharacter(ctx context.Context, id uint) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		character, err := s.characterRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if character == nil {
			return errors.NotFound(characterResource, id)
		}
		return s.characterRepo.Delete(ctx, id)
	})
	if err != nil {
		err = storeError(err, characterResource, id)
		logFailure(s.logger, "delete character", err)
		return err
	}

	s.logger.Info("character deleted", "character_id", id)
	return nil
}

func applyCharacterInput(character *entities.Character, input CharacterInput) {
	character.Name = *input.Name
	character.SkinColor = input.SkinColor
	character.BirthYear = input.BirthYear
	character.Gender = input.Gender
	character.Height = input.Height
}
