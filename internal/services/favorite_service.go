package services

import (
	"context"
	errs "errors"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/errors"
	"github.com/rafabene/starwars-api/internal/domain/ports"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
)

// targetFinder informa se a entidade alvo de um favorito existe
type targetFinder func(ctx context.Context, id uint) (bool, error)

// FavoriteService mantém as relações de favorito entre usuários e o catálogo
type FavoriteService struct {
	userRepo     repositories.UserRepository
	favoriteRepo repositories.FavoriteRepository
	targets      map[entities.Kind]targetFinder
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewFavoriteService cria um novo FavoriteService
func NewFavoriteService(
	userRepo repositories.UserRepository,
	favoriteRepo repositories.FavoriteRepository,
	planetRepo repositories.PlanetRepository,
	vehicleRepo repositories.VehicleRepository,
	characterRepo repositories.CharacterRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *FavoriteService {
	return &FavoriteService{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		targets: map[entities.Kind]targetFinder{
			entities.KindPlanet: func(ctx context.Context, id uint) (bool, error) {
				planet, err := planetRepo.FindByID(ctx, id)
				return planet != nil, err
			},
			entities.KindVehicle: func(ctx context.Context, id uint) (bool, error) {
				vehicle, err := vehicleRepo.FindByID(ctx, id)
				return vehicle != nil, err
			},
			entities.KindCharacter: func(ctx context.Context, id uint) (bool, error) {
				character, err := characterRepo.FindByID(ctx, id)
				return character != nil, err
			},
		},
		uow:    uow,
		logger: logger,
	}
}

// AddFavorite cria a relação. Ordem das regras: usuário existe, usuário ativo,
// alvo existe, par ainda não registrado.
func (s *FavoriteService) AddFavorite(ctx context.Context, kind entities.Kind, targetID, userID uint) (*entities.Favorite, error) {
	favorite := &entities.Favorite{Kind: kind, UserID: userID, TargetID: targetID}

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkParticipants(ctx, kind, targetID, userID); err != nil {
			return err
		}

		existing, err := s.favoriteRepo.Find(ctx, kind, userID, targetID)
		if err != nil {
			return err
		}
		if existing != nil {
			return favoriteExists(favorite)
		}

		if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
			switch {
			case errs.Is(err, repositories.ErrDuplicateKey):
				return favoriteExists(favorite)
			case errs.Is(err, repositories.ErrReferenced):
				return errors.NotFound(kind.Resource(), targetID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		err = storeError(err, kind.Resource(), targetID)
		logFailure(s.logger, "add favorite", err)
		return nil, err
	}

	s.logger.Info("favorite added",
		"kind", string(kind),
		"user_id", userID,
		"target_id", targetID,
	)
	return favorite, nil
}

// RemoveFavorite apaga a relação; remover um par inexistente é NotFound
func (s *FavoriteService) RemoveFavorite(ctx context.Context, kind entities.Kind, targetID, userID uint) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkParticipants(ctx, kind, targetID, userID); err != nil {
			return err
		}

		existing, err := s.favoriteRepo.Find(ctx, kind, userID, targetID)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.New(errors.ErrNotFound, "error.favorite_not_found", map[string]any{
				"UserID":   userID,
				"Kind":     string(kind),
				"TargetID": targetID,
			})
		}

		return s.favoriteRepo.Delete(ctx, existing)
	})
	if err != nil {
		err = storeError(err, kind.Resource(), targetID)
		logFailure(s.logger, "remove favorite", err)
		return err
	}

	s.logger.Info("favorite removed",
		"kind", string(kind),
		"user_id", userID,
		"target_id", targetID,
	)
	return nil
}

func (s *FavoriteService) checkParticipants(ctx context.Context, kind entities.Kind, targetID, userID uint) error {
	if _, err := findActiveUser(ctx, s.userRepo, userID); err != nil {
		return err
	}

	find, ok := s.targets[kind]
	if !ok {
		return errors.NotFound(string(kind), targetID)
	}

	exists, err := find(ctx, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(kind.Resource(), targetID)
	}
	return nil
}

func favoriteExists(favorite *entities.Favorite) error {
	return errors.New(errors.ErrAlreadyExists, "error.favorite_exists", map[string]any{
		"Resource": favorite.Kind.Resource(),
		"TargetID": favorite.TargetID,
		"UserID":   favorite.UserID,
	})
}
