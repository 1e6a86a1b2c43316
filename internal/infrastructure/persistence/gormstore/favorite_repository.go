package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/repositories"
)

type favoriteModel interface {
	primaryKey() uint
}

// favoriteTable descreve a tabela de junção de um Kind
type favoriteTable struct {
	name     string
	column   string
	newModel func(userID, targetID uint) favoriteModel
}

var favoriteTables = map[entities.Kind]favoriteTable{
	entities.KindPlanet: {
		name:   "favorite_planets",
		column: "planet_id",
		newModel: func(userID, targetID uint) favoriteModel {
			return &FavoritePlanetModel{UserID: userID, PlanetID: targetID}
		},
	},
	entities.KindVehicle: {
		name:   "favorite_vehicles",
		column: "vehicle_id",
		newModel: func(userID, targetID uint) favoriteModel {
			return &FavoriteVehicleModel{UserID: userID, VehicleID: targetID}
		},
	},
	entities.KindCharacter: {
		name:   "favorite_characters",
		column: "character_id",
		newModel: func(userID, targetID uint) favoriteModel {
			return &FavoriteCharacterModel{UserID: userID, CharacterID: targetID}
		},
	},
}

// favoriteRow é a projeção comum das três tabelas
type favoriteRow struct {
	ID       uint
	UserID   uint
	TargetID uint
}

// FavoriteRepository implementa repositories.FavoriteRepository
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository cria um novo FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) repositories.FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *entities.Favorite) error {
	table, err := tableFor(favorite.Kind)
	if err != nil {
		return err
	}

	model := table.newModel(favorite.UserID, favorite.TargetID)
	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err)
	}

	favorite.ID = model.primaryKey()
	return nil
}

func (r *FavoriteRepository) Find(ctx context.Context, kind entities.Kind, userID, targetID uint) (*entities.Favorite, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var row favoriteRow
	err = r.selectRows(ctx, table).
		Where("user_id = ? AND "+table.column+" = ?", userID, targetID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return row.toEntity(kind), nil
}

// ListByUser retorna os favoritos do usuário em ordem de inserção
func (r *FavoriteRepository) ListByUser(ctx context.Context, kind entities.Kind, userID uint) ([]*entities.Favorite, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var rows []favoriteRow
	err = r.selectRows(ctx, table).
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	favorites := make([]*entities.Favorite, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, row.toEntity(kind))
	}
	return favorites, nil
}

func (r *FavoriteRepository) CountByTarget(ctx context.Context, kind entities.Kind, targetID uint) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	var count int64
	err = getDB(ctx, r.db).
		Table(table.name).
		Where(table.column+" = ?", targetID).
		Count(&count).Error
	return count, err
}

func (r *FavoriteRepository) Delete(ctx context.Context, favorite *entities.Favorite) error {
	table, err := tableFor(favorite.Kind)
	if err != nil {
		return err
	}

	result := getDB(ctx, r.db).Delete(table.newModel(0, 0), favorite.ID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrRecordNotFound
	}
	return nil
}

func (r *FavoriteRepository) selectRows(ctx context.Context, table favoriteTable) *gorm.DB {
	return getDB(ctx, r.db).
		Table(table.name).
		Select("id, user_id, " + table.column + " AS target_id")
}

func tableFor(kind entities.Kind) (favoriteTable, error) {
	table, ok := favoriteTables[kind]
	if !ok {
		return favoriteTable{}, fmt.Errorf("unknown favorite kind %q", kind)
	}
	return table, nil
}

func (row favoriteRow) toEntity(kind entities.Kind) *entities.Favorite {
	return &entities.Favorite{
		ID:       row.ID,
		Kind:     kind,
		UserID:   row.UserID,
		TargetID: row.TargetID,
	}
}
