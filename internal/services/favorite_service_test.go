package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/errors"
)

var _ = Describe("FavoriteService", func() {
	var (
		f      *fixture
		ctx    context.Context
		user   *entities.User
		planet *entities.Planet
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()

		var err error
		user, _, err = f.users.CreateUser(ctx, userInput("luke", "luke@rebels.org", "x"))
		Expect(err).NotTo(HaveOccurred())
		planet, err = f.planets.CreatePlanet(ctx, tatooine())
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns the created join row", func() {
		favorite, err := f.favorites.AddFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)

		Expect(err).NotTo(HaveOccurred())
		Expect(favorite.ID).NotTo(BeZero())
		Expect(favorite.UserID).To(Equal(user.ID))
		Expect(favorite.TargetID).To(Equal(planet.ID))
	})

	It("stores a pair only once", func() {
		_, err := f.favorites.AddFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)
		Expect(err).NotTo(HaveOccurred())

		_, err = f.favorites.AddFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)
		Expect(err).To(MatchError(errors.ErrAlreadyExists))

		favorites, err := f.users.ListFavorites(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(favorites.Planets).To(HaveLen(1))
	})

	It("reports a missing user before a missing target", func() {
		_, err := f.favorites.AddFavorite(ctx, entities.KindPlanet, 999, 999)

		Expect(err).To(MatchError(errors.ErrNotFound))
		de, _ := errors.AsDomainError(err)
		Expect(de.Params["Resource"]).To(Equal("User"))
	})

	It("reports a missing target", func() {
		_, err := f.favorites.AddFavorite(ctx, entities.KindVehicle, 999, user.ID)

		Expect(err).To(MatchError(errors.ErrNotFound))
		de, _ := errors.AsDomainError(err)
		Expect(de.Params["Resource"]).To(Equal("Vehicle"))
	})

	Context("when the user is deactivated", func() {
		BeforeEach(func() {
			Expect(f.users.DeactivateUser(ctx, user.ID)).To(Succeed())
		})

		It("rejects add and remove even for targets that do not exist", func() {
			_, err := f.favorites.AddFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)
			Expect(err).To(MatchError(errors.ErrUserDeactivated))

			_, err = f.favorites.AddFavorite(ctx, entities.KindCharacter, 12345, user.ID)
			Expect(err).To(MatchError(errors.ErrUserDeactivated))

			err = f.favorites.RemoveFavorite(ctx, entities.KindVehicle, 12345, user.ID)
			Expect(err).To(MatchError(errors.ErrUserDeactivated))
		})
	})

	Describe("RemoveFavorite", func() {
		It("deletes an existing pair", func() {
			_, err := f.favorites.AddFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.favorites.RemoveFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)).To(Succeed())

			favorites, err := f.users.ListFavorites(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(favorites.Planets).To(BeEmpty())
		})

		It("returns NotFound for a pair that was never added", func() {
			err := f.favorites.RemoveFavorite(ctx, entities.KindPlanet, planet.ID, user.ID)

			Expect(err).To(MatchError(errors.ErrNotFound))
			de, _ := errors.AsDomainError(err)
			Expect(de.MessageID).To(Equal("error.favorite_not_found"))
		})
	})
})
