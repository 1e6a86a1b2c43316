package services

import (
	"context"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/errors"
	"github.com/rafabene/starwars-api/internal/domain/ports"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
	"github.com/rafabene/starwars-api/internal/domain/valueobjects"
)

const userResource = "User"

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo      repositories.UserRepository
	favoriteRepo  repositories.FavoriteRepository
	planetRepo    repositories.PlanetRepository
	vehicleRepo   repositories.VehicleRepository
	characterRepo repositories.CharacterRepository
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	favoriteRepo repositories.FavoriteRepository,
	planetRepo repositories.PlanetRepository,
	vehicleRepo repositories.VehicleRepository,
	characterRepo repositories.CharacterRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		favoriteRepo:  favoriteRepo,
		planetRepo:    planetRepo,
		vehicleRepo:   vehicleRepo,
		characterRepo: characterRepo,
		uow:           uow,
		logger:        logger,
	}
}

// UserInput representa os dados para criar ou substituir um usuário.
// Campo nil = chave ausente no payload.
type UserInput struct {
	UserName *string `json:"user_name" validate:"required,min=1"`
	Email    *string `json:"email" validate:"required,min=1"`
	Password *string `json:"password" validate:"required,min=1"`
}

// UserFavorites agrupa os favoritos de um usuário por tipo
type UserFavorites struct {
	Planets    []*entities.Planet
	Vehicles   []*entities.Vehicle
	Characters []*entities.Character
}

// ListUsers lista todos os usuários, ativos ou não
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		err = errors.StoreFailure(err)
		logFailure(s.logger, "list users", err)
		return nil, err
	}
	return users, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		err = errors.StoreFailure(err)
		logFailure(s.logger, "get user", err)
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound(userResource, id)
	}
	return user, nil
}

// CreateUser registra um novo usuário. Se o email pertencer a um usuário
// desativado, esse usuário é reativado sem outras alterações e reactivated é true.
func (s *UserService) CreateUser(ctx context.Context, input UserInput) (user *entities.User, reactivated bool, err error) {
	err = s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		if input.Email != nil {
			existing, err := s.userRepo.FindByEmail(ctx, *input.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				if existing.IsActive {
					return errors.New(errors.ErrAlreadyExists, "error.email_in_use", nil)
				}
				existing.Reactivate()
				if err := s.userRepo.Update(ctx, existing); err != nil {
					return err
				}
				user, reactivated = existing, true
				return nil
			}
		}

		if err := requireFields(input, valueobjects.UserFields); err != nil {
			return err
		}

		user = &entities.User{
			UserName: *input.UserName,
			Email:    *input.Email,
			Password: *input.Password,
			IsActive: true,
		}
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		err = storeError(err, userResource, 0)
		logFailure(s.logger, "create user", err)
		return nil, false, err
	}

	if reactivated {
		s.logger.Info("user reactivated", "user_id", user.ID)
	} else {
		s.logger.Info("user created", "user_id", user.ID)
	}
	return user, reactivated, nil
}

// UpdateUser substitui todos os campos de um usuário ativo
func (s *UserService) UpdateUser(ctx context.Context, id uint, input UserInput) (*entities.User, error) {
	var user *entities.User

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = findActiveUser(ctx, s.userRepo, id)
		if err != nil {
			return err
		}

		if input.Email != nil && *input.Email != user.Email {
			other, err := s.userRepo.FindByEmail(ctx, *input.Email)
			if err != nil {
				return err
			}
			if other != nil {
				if other.IsActive {
					return errors.New(errors.ErrAlreadyExists, "error.email_in_use", nil)
				}
				return errors.New(errors.ErrAlreadyExists, "error.conflict", map[string]any{"Resource": userResource})
			}
		}

		if err := requireFields(input, valueobjects.UserFields); err != nil {
			return err
		}

		user.Replace(*input.UserName, *input.Email, *input.Password)
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		err = storeError(err, userResource, id)
		logFailure(s.logger, "update user", err)
		return nil, err
	}

	s.logger.Info("user updated", "user_id", id)
	return user, nil
}

// DeactivateUser desativa o usuário (soft delete). Desativar duas vezes é erro.
func (s *UserService) DeactivateUser(ctx context.Context, id uint) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.NotFound(userResource, id)
		}
		if !user.IsActive {
			return errors.AlreadyInactive(id)
		}

		user.Deactivate()
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		err = storeError(err, userResource, id)
		logFailure(s.logger, "deactivate user", err)
		return err
	}

	s.logger.Info("user deactivated", "user_id", id)
	return nil
}

// ListFavorites retorna as entidades favoritas do usuário, buscando cada alvo pelo id
func (s *UserService) ListFavorites(ctx context.Context, id uint) (*UserFavorites, error) {
	favorites := &UserFavorites{
		Planets:    []*entities.Planet{},
		Vehicles:   []*entities.Vehicle{},
		Characters: []*entities.Character{},
	}

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.NotFound(userResource, id)
		}

		for _, kind := range entities.Kinds() {
			rows, err := s.favoriteRepo.ListByUser(ctx, kind, id)
			if err != nil {
				return err
			}
			for _, row := range rows {
				if err := s.appendTarget(ctx, favorites, row); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		err = storeError(err, userResource, id)
		logFailure(s.logger, "list favorites", err)
		return nil, err
	}

	return favorites, nil
}

func (s *UserService) appendTarget(ctx context.Context, favorites *UserFavorites, row *entities.Favorite) error {
	switch row.Kind {
	case entities.KindPlanet:
		planet, err := s.planetRepo.FindByID(ctx, row.TargetID)
		if err != nil || planet == nil {
			return err
		}
		favorites.Planets = append(favorites.Planets, planet)
	case entities.KindVehicle:
		vehicle, err := s.vehicleRepo.FindByID(ctx, row.TargetID)
		if err != nil || vehicle == nil {
			return err
		}
		favorites.Vehicles = append(favorites.Vehicles, vehicle)
	case entities.KindCharacter:
		character, err := s.characterRepo.FindByID(ctx, row.TargetID)
		if err != nil || character == nil {
			return err
		}
		favorites.Characters = append(favorites.Characters, character)
	}
	return nil
}
