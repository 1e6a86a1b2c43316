package dto

import (
	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/services"
)

// PlanetRequest é o corpo de POST /planet e PUT /planet/{id}
type PlanetRequest struct {
	Name        *string `json:"name" example:"Tatooine"`
	Diameter    *int64  `json:"diameter" example:"10465"`
	Population  *int64  `json:"population" example:"200000"`
	DurationDay *int64  `json:"duration_day" example:"23"`
	Terrain     *string `json:"terrain" example:"desert"`
}

func (r PlanetRequest) ToInput() services.PlanetInput {
	return services.PlanetInput{
		Name:        r.Name,
		Diameter:    r.Diameter,
		Population:  r.Population,
		DurationDay: r.DurationDay,
		Terrain:     r.Terrain,
	}
}

type PlanetResponse struct {
	PlanetID    uint    `json:"planet_id"`
	Name        string  `json:"name"`
	Diameter    *int64  `json:"diameter"`
	Population  *int64  `json:"population"`
	Terrain     *string `json:"terrain"`
	DurationDay *int64  `json:"duration_day"`
}

func ToPlanetResponse(planet *entities.Planet) PlanetResponse {
	return PlanetResponse{
		PlanetID:    planet.ID,
		Name:        planet.Name,
		Diameter:    planet.Diameter,
		Population:  planet.Population,
		Terrain:     planet.Terrain,
		DurationDay: planet.DurationDay,
	}
}

func ToPlanetResponses(planets []*entities.Planet) []PlanetResponse {
	responses := make([]PlanetResponse, len(planets))
	for i, planet := range planets {
		responses[i] = ToPlanetResponse(planet)
	}
	return responses
}

// VehicleRequest é o corpo de POST /vehicle e PUT /vehicle/{id}
type VehicleRequest struct {
	Name          *string `json:"name" example:"Sand Crawler"`
	Crew          *int64  `json:"crew" example:"46"`
	Model         *string `json:"model" example:"Digger Crawler"`
	Length        *int64  `json:"length" example:"36"`
	CargoCapacity *int64  `json:"cargo_capacity" example:"50000"`
}

func (r VehicleRequest) ToInput() services.VehicleInput {
	return services.VehicleInput{
		Name:          r.Name,
		Crew:          r.Crew,
		Model:         r.Model,
		Length:        r.Length,
		CargoCapacity: r.CargoCapacity,
	}
}

type VehicleResponse struct {
	VehicleID     uint    `json:"vehicle_id"`
	Name          string  `json:"name"`
	Crew          *int64  `json:"crew"`
	Length        *int64  `json:"length"`
	Model         *string `json:"model"`
	CargoCapacity *int64  `json:"cargo_capacity"`
}

func ToVehicleResponse(vehicle *entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:     vehicle.ID,
		Name:          vehicle.Name,
		Crew:          vehicle.Crew,
		Length:        vehicle.Length,
		Model:         vehicle.Model,
		CargoCapacity: vehicle.CargoCapacity,
	}
}

func ToVehicleResponses(vehicles []*entities.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		responses[i] = ToVehicleResponse(vehicle)
	}
	return responses
}

// CharacterRequest é o corpo de POST /character e PUT /character/{id}
type CharacterRequest struct {
	Name      *string `json:"name" example:"Luke Skywalker"`
	SkinColor *string `json:"skin_color" example:"fair"`
	BirthYear *string `json:"birth_year" example:"19BBY"`
	Gender    *string `json:"gender" example:"male"`
	Height    *int64  `json:"height" example:"172"`
}

func (r CharacterRequest) ToInput() services.CharacterInput {
	return services.CharacterInput{
		Name:      r.Name,
		SkinColor: r.SkinColor,
		BirthYear: r.BirthYear,
		Gender:    r.Gender,
		Height:    r.Height,
	}
}

type CharacterResponse struct {
	CharacterID uint    `json:"character_id"`
	Name        string  `json:"name"`
	BirthYear   *string `json:"birth_year"`
	Gender      *string `json:"gender"`
	Height      *int64  `json:"height"`
	SkinColor   *string `json:"skin_color"`
}

func ToCharacterResponse(character *entities.Character) CharacterResponse {
	return CharacterResponse{
		CharacterID: character.ID,
		Name:        character.Name,
		BirthYear:   character.BirthYear,
		Gender:      character.Gender,
		Height:      character.Height,
		SkinColor:   character.SkinColor,
	}
}

func ToCharacterResponses(characters []*entities.Character) []CharacterResponse {
	responses := make([]CharacterResponse, len(characters))
	for i, character := range characters {
		responses[i] = ToCharacterResponse(character)
	}
	return responses
}
