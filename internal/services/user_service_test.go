package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/errors"
	"github.com/rafabene/starwars-api/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		f   *fixture
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()
	})

	Describe("CreateUser", func() {
		It("creates an active user", func() {
			user, reactivated, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))

			Expect(err).NotTo(HaveOccurred())
			Expect(reactivated).To(BeFalse())
			Expect(user.ID).NotTo(BeZero())
			Expect(user.IsActive).To(BeTrue())
		})

		It("rejects an email used by an active user", func() {
			_, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())

			_, _, err = f.users.CreateUser(ctx, userInput("other", "luke@rebels.org", "y"))
			Expect(err).To(MatchError(errors.ErrAlreadyExists))

			users, err := f.users.ListUsers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
		})

		It("reactivates a deactivated user without touching other fields", func() {
			created, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.users.DeactivateUser(ctx, created.ID)).To(Succeed())

			user, reactivated, err := f.users.CreateUser(ctx, userInput("changed", "luke@rebels.org", "changed"))

			Expect(err).NotTo(HaveOccurred())
			Expect(reactivated).To(BeTrue())
			Expect(user.ID).To(Equal(created.ID))
			Expect(user.IsActive).To(BeTrue())
			Expect(user.UserName).To(Equal("luke"))
			Expect(user.Password).To(Equal("x"))
		})

		It("checks the email before the required fields", func() {
			_, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())

			_, _, err = f.users.CreateUser(ctx, userInput("", "luke@rebels.org", ""))
			Expect(err).To(MatchError(errors.ErrAlreadyExists))
		})

		It("requires every field", func() {
			_, _, err := f.users.CreateUser(ctx, services.UserInput{UserName: ptr("luke"), Email: ptr("luke@rebels.org")})

			Expect(err).To(MatchError(errors.ErrMissingFields))
			de, ok := errors.AsDomainError(err)
			Expect(ok).To(BeTrue())
			Expect(de.Params["Fields"]).To(Equal(`"user_name", "email", "password"`))
			Expect(de.Detail).To(ContainSubstring("password"))
		})

		It("treats empty strings as missing", func() {
			_, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", ""))
			Expect(err).To(MatchError(errors.ErrMissingFields))
		})

		It("rejects a duplicate user name as a conflict", func() {
			_, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())

			_, _, err = f.users.CreateUser(ctx, userInput("luke", "other@rebels.org", "x"))
			Expect(err).To(MatchError(errors.ErrAlreadyExists))
		})
	})

	Describe("DeactivateUser", func() {
		It("fails the second time with AlreadyInactive", func() {
			user, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())

			Expect(f.users.DeactivateUser(ctx, user.ID)).To(Succeed())
			Expect(f.users.DeactivateUser(ctx, user.ID)).To(MatchError(errors.ErrAlreadyInactive))

			stored, err := f.users.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.IsActive).To(BeFalse())
			Expect(stored.Email).To(Equal("luke@rebels.org"))
		})

		It("returns NotFound for an unknown id", func() {
			Expect(f.users.DeactivateUser(ctx, 99)).To(MatchError(errors.ErrNotFound))
		})
	})

	Describe("UpdateUser", func() {
		It("replaces every field", func() {
			user, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())

			_, err = f.users.UpdateUser(ctx, user.ID, userInput("leia", "leia@rebels.org", "y"))
			Expect(err).NotTo(HaveOccurred())

			stored, err := f.users.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.UserName).To(Equal("leia"))
			Expect(stored.Email).To(Equal("leia@rebels.org"))
			Expect(stored.Password).To(Equal("y"))
		})

		It("applies existence, active gate and required fields in order", func() {
			_, err := f.users.UpdateUser(ctx, 42, services.UserInput{})
			Expect(err).To(MatchError(errors.ErrNotFound))

			user, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.users.DeactivateUser(ctx, user.ID)).To(Succeed())

			_, err = f.users.UpdateUser(ctx, user.ID, services.UserInput{})
			Expect(err).To(MatchError(errors.ErrUserDeactivated))
		})

		It("rejects an email owned by another user", func() {
			_, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())
			leia, _, err := f.users.CreateUser(ctx, userInput("leia", "leia@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())

			_, err = f.users.UpdateUser(ctx, leia.ID, userInput("leia", "luke@rebels.org", "x"))
			Expect(err).To(MatchError(errors.ErrAlreadyExists))
		})
	})

	Describe("ListFavorites", func() {
		It("fetches the favorite entities of every kind", func() {
			user, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())
			planet, err := f.planets.CreatePlanet(ctx, tatooine())
			Expect(err).NotTo(HaveOccurred())
			vehicle, err := f.vehicles.CreateVehicle(ctx, speeder())
			Expect(err).NotTo(HaveOccurred())
			character, err := f.characters.CreateCharacter(ctx, luke())
			Expect(err).NotTo(HaveOccurred())

			_, err = f.favorites.AddFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = f.favorites.AddFavorite(ctx, entities.KindVehicle, vehicle.ID, user.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = f.favorites.AddFavorite(ctx, entities.KindCharacter, character.ID, user.ID)
			Expect(err).NotTo(HaveOccurred())

			favorites, err := f.users.ListFavorites(ctx, user.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(favorites.Planets).To(HaveLen(1))
			Expect(favorites.Planets[0].Name).To(Equal("Tatooine"))
			Expect(favorites.Vehicles).To(HaveLen(1))
			Expect(favorites.Vehicles[0].Name).To(Equal("Speeder"))
			Expect(favorites.Characters).To(HaveLen(1))
			Expect(favorites.Characters[0].Name).To(Equal("Luke Skywalker"))
		})

		It("returns empty lists for a user without favorites", func() {
			user, _, err := f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
			Expect(err).NotTo(HaveOccurred())

			favorites, err := f.users.ListFavorites(ctx, user.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(favorites.Planets).To(BeEmpty())
			Expect(favorites.Vehicles).To(BeEmpty())
			Expect(favorites.Characters).To(BeEmpty())
		})

		It("returns NotFound for an unknown user", func() {
			_, err := f.users.ListFavorites(ctx, 7)
			Expect(err).To(MatchError(errors.ErrNotFound))
		})
	})
})
