package dto

import (
	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/services"
)

// UserRequest é o corpo de POST /user e PUT /user/{id}.
// Ponteiros distinguem chave ausente de valor vazio.
type UserRequest struct {
	UserName *string `json:"user_name" example:"luke"`
	Email    *string `json:"email" example:"luke@rebels.org"`
	Password *string `json:"password" example:"secret"`
}

func (r UserRequest) ToInput() services.UserInput {
	return services.UserInput{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password,
	}
}

// UserResponse é a projeção pública de um usuário (sem senha)
type UserResponse struct {
	ID       uint   `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		IsActive: user.IsActive,
	}
}

func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// FavoritesResponse lista as entidades favoritas de um usuário
type FavoritesResponse struct {
	FavoritePlanets    []PlanetResponse    `json:"favorite_planets"`
	FavoriteVehicles   []VehicleResponse   `json:"favorite_vehicles"`
	FavoriteCharacters []CharacterResponse `json:"favorite_characters"`
}

func ToFavoritesResponse(favorites *services.UserFavorites) FavoritesResponse {
	return FavoritesResponse{
		FavoritePlanets:    ToPlanetResponses(favorites.Planets),
		FavoriteVehicles:   ToVehicleResponses(favorites.Vehicles),
		FavoriteCharacters: ToCharacterResponses(favorites.Characters),
	}
}

// ToFavoriteResponse projeta a linha de junção: {id, user_id, planet_id}
func ToFavoriteResponse(favorite *entities.Favorite) map[string]any {
	return map[string]any{
		"id":                        favorite.ID,
		"user_id":                   favorite.UserID,
		favorite.Kind.TargetField(): favorite.TargetID,
	}
}
