package repositories

import (
	"context"

	"github.com/rafabene/starwars-api/internal/domain/entities"
)

// FavoriteRepository define a persistência das três tabelas de favoritos.
// Cada chamada recebe o Kind que seleciona a tabela.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entities.Favorite) error
	Find(ctx context.Context, kind entities.Kind, userID, targetID uint) (*entities.Favorite, error)
	ListByUser(ctx context.Context, kind entities.Kind, userID uint) ([]*entities.Favorite, error)
	CountByTarget(ctx context.Context, kind entities.Kind, targetID uint) (int64, error)
	Delete(ctx context.Context, favorite *entities.Favorite) error
}
