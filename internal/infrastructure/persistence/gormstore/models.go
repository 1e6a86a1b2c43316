package gormstore

// UserModel é o model GORM para usuários
type UserModel struct {
	ID       uint   `gorm:"primaryKey"`
	UserName string `gorm:"type:varchar(35);uniqueIndex;not null"`
	Email    string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(80);not null"`
	IsActive bool   `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type PlanetModel struct {
	ID          uint    `gorm:"column:planet_id;primaryKey"`
	Name        string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Diameter    *int64
	Population  *int64
	DurationDay *int64
	Terrain     *string `gorm:"type:varchar(50)"`
}

func (PlanetModel) TableName() string {
	return "planets"
}

type VehicleModel struct {
	ID            uint    `gorm:"column:vehicle_id;primaryKey"`
	Name          string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Crew          *int64
	Model         *string `gorm:"type:varchar(50)"`
	Length        *int64
	CargoCapacity *int64
}

func (VehicleModel) TableName() string {
	return "vehicles"
}

type CharacterModel struct {
	ID        uint    `gorm:"column:character_id;primaryKey"`
	Name      string  `gorm:"type:varchar(30);not null"`
	SkinColor *string `gorm:"type:varchar(30)"`
	BirthYear *string `gorm:"type:varchar(50)"`
	Gender    *string `gorm:"type:varchar(20)"`
	Height    *int64
}

func (CharacterModel) TableName() string {
	return "characters"
}

// Tabelas de favoritos: o par (user_id, alvo) é único.
// Planetas e veículos referenciados não podem ser removidos (RESTRICT);
// a remoção de um personagem leva junto seus favoritos (CASCADE).

type FavoritePlanetModel struct {
	ID       uint        `gorm:"primaryKey"`
	UserID   uint        `gorm:"not null;uniqueIndex:idx_favorite_planets_user_planet"`
	PlanetID uint        `gorm:"not null;uniqueIndex:idx_favorite_planets_user_planet;index"`
	User     UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Planet   PlanetModel `gorm:"foreignKey:PlanetID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (FavoritePlanetModel) TableName() string {
	return "favorite_planets"
}

func (m *FavoritePlanetModel) primaryKey() uint {
	return m.ID
}

type FavoriteVehicleModel struct {
	ID        uint         `gorm:"primaryKey"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_favorite_vehicles_user_vehicle"`
	VehicleID uint         `gorm:"not null;uniqueIndex:idx_favorite_vehicles_user_vehicle;index"`
	User      UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Vehicle   VehicleModel `gorm:"foreignKey:VehicleID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (FavoriteVehicleModel) TableName() string {
	return "favorite_vehicles"
}

func (m *FavoriteVehicleModel) primaryKey() uint {
	return m.ID
}

type FavoriteCharacterModel struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      uint           `gorm:"not null;uniqueIndex:idx_favorite_characters_user_character"`
	CharacterID uint           `gorm:"not null;uniqueIndex:idx_favorite_characters_user_character;index"`
	User        UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Character   CharacterModel `gorm:"foreignKey:CharacterID;references:ID;constraint:OnDelete:CASCADE"`
}

func (FavoriteCharacterModel) TableName() string {
	return "favorite_characters"
}

func (m *FavoriteCharacterModel) primaryKey() uint {
	return m.ID
}
