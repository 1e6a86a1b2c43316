package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/handlers/dto"
	"github.com/rafabene/starwars-api/internal/services"
)

// FavoriteHandler atende /favorite/{kind}/{target_id}/{user_id} para os três tipos
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// AddFavorite retorna o handler de criação para o tipo informado
// @Summary  Add a favorite
// @Tags     favorites
// @Produce  json
// @Param    kind       path      string  true  "planet, vehicle or character"
// @Param    target_id  path      int     true  "Target ID"
// @Param    user_id    path      int     true  "User ID"
// @Success  200        {object}  dto.Response
// @Failure  404        {object}  dto.ErrorResponse
// @Failure  409        {object}  dto.ErrorResponse  "user deactivated or duplicate"
// @Router   /favorite/{kind}/{target_id}/{user_id} [post]
func (h *FavoriteHandler) AddFavorite(kind entities.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, userID, ok := favoriteIDs(c, kind)
		if !ok {
			return
		}

		favorite, err := h.favoriteService.AddFavorite(c.Request.Context(), kind, targetID, userID)
		if err != nil {
			dto.WriteError(c, err)
			return
		}

		dto.Respond(c, http.StatusOK, "favorite.added", dto.ToFavoriteResponse(favorite), favoriteParams(kind, targetID, userID))
	}
}

// RemoveFavorite retorna o handler de remoção para o tipo informado
// @Summary  Remove a favorite
// @Tags     favorites
// @Produce  json
// @Param    kind       path      string  true  "planet, vehicle or character"
// @Param    target_id  path      int     true  "Target ID"
// @Param    user_id    path      int     true  "User ID"
// @Success  200        {object}  dto.Response
// @Failure  404        {object}  dto.ErrorResponse
// @Failure  409        {object}  dto.ErrorResponse  "user deactivated"
// @Router   /favorite/{kind}/{target_id}/{user_id} [delete]
func (h *FavoriteHandler) RemoveFavorite(kind entities.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, userID, ok := favoriteIDs(c, kind)
		if !ok {
			return
		}

		if err := h.favoriteService.RemoveFavorite(c.Request.Context(), kind, targetID, userID); err != nil {
			dto.WriteError(c, err)
			return
		}

		dto.Respond(c, http.StatusOK, "favorite.removed", nil, favoriteParams(kind, targetID, userID))
	}
}

func favoriteIDs(c *gin.Context, kind entities.Kind) (targetID, userID uint, ok bool) {
	if userID, ok = parseID(c, "user_id", "User"); !ok {
		return 0, 0, false
	}
	if targetID, ok = parseID(c, "target_id", kind.Resource()); !ok {
		return 0, 0, false
	}
	return targetID, userID, true
}

func favoriteParams(kind entities.Kind, targetID, userID uint) map[string]any {
	return map[string]any{
		"Resource": kind.Resource(),
		"TargetID": targetID,
		"UserID":   userID,
	}
}
