package gormstore

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate cria ou atualiza o schema de todas as tabelas
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&UserModel{},
		&PlanetModel{},
		&VehicleModel{},
		&CharacterModel{},
		&FavoritePlanetModel{},
		&FavoriteVehicleModel{},
		&FavoriteCharacterModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
