package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/errors"
	"github.com/rafabene/starwars-api/internal/services"
)

var _ = Describe("PlanetService", func() {
	var (
		f   *fixture
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()
	})

	It("creates a planet and reads it back", func() {
		created, err := f.planets.CreatePlanet(ctx, tatooine())
		Expect(err).NotTo(HaveOccurred())
		Expect(created.ID).NotTo(BeZero())

		planet, err := f.planets.GetPlanet(ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(planet).To(Equal(created))
		Expect(*planet.Diameter).To(Equal(int64(10465)))
		Expect(*planet.Terrain).To(Equal("desert"))
	})

	It("never keeps two planets with the same name", func() {
		_, err := f.planets.CreatePlanet(ctx, tatooine())
		Expect(err).NotTo(HaveOccurred())

		_, err = f.planets.CreatePlanet(ctx, tatooine())
		Expect(err).To(MatchError(errors.ErrAlreadyExists))

		planets, err := f.planets.ListPlanets(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(planets).To(HaveLen(1))
	})

	It("accepts zero values as supplied fields", func() {
		input := tatooine()
		input.Population = ptr(int64(0))

		planet, err := f.planets.CreatePlanet(ctx, input)
		Expect(err).NotTo(HaveOccurred())
		Expect(*planet.Population).To(BeZero())
	})

	It("lists the required fields when one is missing", func() {
		input := tatooine()
		input.Terrain = nil

		_, err := f.planets.CreatePlanet(ctx, input)

		Expect(err).To(MatchError(errors.ErrMissingFields))
		de, _ := errors.AsDomainError(err)
		Expect(de.Params["Fields"]).To(Equal(`"name", "diameter", "population", "duration_day", "terrain"`))
	})

	It("replaces every field on update", func() {
		created, err := f.planets.CreatePlanet(ctx, tatooine())
		Expect(err).NotTo(HaveOccurred())

		_, err = f.planets.UpdatePlanet(ctx, created.ID, services.PlanetInput{
			Name:        ptr("Hoth"),
			Diameter:    ptr(int64(7200)),
			Population:  ptr(int64(0)),
			DurationDay: ptr(int64(23)),
			Terrain:     ptr("tundra"),
		})
		Expect(err).NotTo(HaveOccurred())

		planet, err := f.planets.GetPlanet(ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(planet.Name).To(Equal("Hoth"))
		Expect(*planet.Diameter).To(Equal(int64(7200)))
		Expect(*planet.Population).To(Equal(int64(0)))
		Expect(*planet.Terrain).To(Equal("tundra"))
	})

	It("allows an update that keeps its own name", func() {
		created, err := f.planets.CreatePlanet(ctx, tatooine())
		Expect(err).NotTo(HaveOccurred())

		_, err = f.planets.UpdatePlanet(ctx, created.ID, tatooine())
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an update to another planet's name", func() {
		_, err := f.planets.CreatePlanet(ctx, tatooine())
		Expect(err).NotTo(HaveOccurred())
		input := tatooine()
		input.Name = ptr("Naboo")
		naboo, err := f.planets.CreatePlanet(ctx, input)
		Expect(err).NotTo(HaveOccurred())

		_, err = f.planets.UpdatePlanet(ctx, naboo.ID, tatooine())
		Expect(err).To(MatchError(errors.ErrAlreadyExists))
	})

	It("checks existence before required fields on update", func() {
		_, err := f.planets.UpdatePlanet(ctx, 5, services.PlanetInput{})
		Expect(err).To(MatchError(errors.ErrNotFound))
	})

	Describe("DeletePlanet", func() {
		It("is blocked while a favorite references the planet", func() {
			user, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())
			planet, err := f.planets.CreatePlanet(ctx, tatooine())
			Expect(err).NotTo(HaveOccurred())
			_, err = f.favorites.AddFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.planets.DeletePlanet(ctx, planet.ID)).To(MatchError(errors.ErrHasDependents))
			_, err = f.planets.GetPlanet(ctx, planet.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.favorites.RemoveFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)).To(Succeed())
			Expect(f.planets.DeletePlanet(ctx, planet.ID)).To(Succeed())

			_, err = f.planets.GetPlanet(ctx, planet.ID)
			Expect(err).To(MatchError(errors.ErrNotFound))
		})

		It("returns NotFound for an unknown id", func() {
			Expect(f.planets.DeletePlanet(ctx, 3)).To(MatchError(errors.ErrNotFound))
		})
	})
})

var _ = Describe("VehicleService", func() {
	var (
		f   *fixture
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()
	})

	It("creates, replaces and deletes a vehicle", func() {
		created, err := f.vehicles.CreateVehicle(ctx, speeder())
		Expect(err).NotTo(HaveOccurred())

		input := speeder()
		input.Crew = ptr(int64(2))
		input.Model = ptr("X-34")
		_, err = f.vehicles.UpdateVehicle(ctx, created.ID, input)
		Expect(err).NotTo(HaveOccurred())

		vehicle, err := f.vehicles.GetVehicle(ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(*vehicle.Crew).To(Equal(int64(2)))
		Expect(*vehicle.Model).To(Equal("X-34"))

		Expect(f.vehicles.DeleteVehicle(ctx, created.ID)).To(Succeed())
		_, err = f.vehicles.GetVehicle(ctx, created.ID)
		Expect(err).To(MatchError(errors.ErrNotFound))
	})

	It("rejects a duplicate name before checking required fields", func() {
		_, err := f.vehicles.CreateVehicle(ctx, speeder())
		Expect(err).NotTo(HaveOccurred())

		_, err = f.vehicles.CreateVehicle(ctx, services.VehicleInput{Name: ptr("Speeder")})
		Expect(err).To(MatchError(errors.ErrAlreadyExists))
	})

	It("is not deleted while a favorite references it", func() {
		user, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
		Expect(err).NotTo(HaveOccurred())
		vehicle, err := f.vehicles.CreateVehicle(ctx, speeder())
		Expect(err).NotTo(HaveOccurred())
		_, err = f.favorites.AddFavorite(ctx, entities.KindVehicle, vehicle.ID, user.ID)
		Expect(err).NotTo(HaveOccurred())

		Expect(f.vehicles.DeleteVehicle(ctx, vehicle.ID)).To(MatchError(errors.ErrHasDependents))
	})
})

var _ = Describe("CharacterService", func() {
	var (
		f   *fixture
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()
	})

	It("allows two characters with the same name", func() {
		_, err := f.characters.CreateCharacter(ctx, luke())
		Expect(err).NotTo(HaveOccurred())
		_, err = f.characters.CreateCharacter(ctx, luke())
		Expect(err).NotTo(HaveOccurred())

		characters, err := f.characters.ListCharacters(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(characters).To(HaveLen(2))
	})

	It("requires every field", func() {
		input := luke()
		input.Height = nil

		_, err := f.characters.CreateCharacter(ctx, input)
		Expect(err).To(MatchError(errors.ErrMissingFields))
	})

	It("deletes a character even when it is a favorite", func() {
		user, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
		Expect(err).NotTo(HaveOccurred())
		character, err := f.characters.CreateCharacter(ctx, luke())
		Expect(err).NotTo(HaveOccurred())
		_, err = f.favorites.AddFavorite(ctx, entities.KindCharacter, character.ID, user.ID)
		Expect(err).NotTo(HaveOccurred())

		Expect(f.characters.DeleteCharacter(ctx, character.ID)).To(Succeed())

		favorites, err := f.users.ListFavorites(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(favorites.Characters).To(BeEmpty())
	})

	It("returns NotFound when updating an unknown character", func() {
		_, err := f.characters.UpdateCharacter(ctx, 11, luke())
		Expect(err).To(MatchError(errors.ErrNotFound))
	})
})
