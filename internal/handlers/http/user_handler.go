package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/starwars-api/internal/handlers/dto"
	"github.com/rafabene/starwars-api/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers lista usuários
// @Summary  List users
// @Tags     users
// @Produce  json
// @Success  200  {object}  dto.Response{data=[]dto.UserResponse}
// @Router   /user [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "user.list", dto.ToUserResponses(users))
}

// GetUser busca um usuário por ID
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Param    id   path      int  true  "User ID"
// @Success  200  {object}  dto.Response{data=dto.UserResponse}
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id", "User")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "user.get", dto.ToUserResponse(user))
}

// CreateUser registra um usuário ou reativa um desativado com o mesmo email
// @Summary  Create or reactivate a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    user  body      dto.UserRequest  true  "User"
// @Success  201   {object}  dto.Response{data=dto.UserResponse}
// @Success  200   {object}  dto.Response{data=dto.UserResponse}  "reactivated"
// @Failure  400   {object}  dto.ErrorResponse
// @Failure  409   {object}  dto.ErrorResponse
// @Router   /user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	req := bindBody[dto.UserRequest](c)

	user, reactivated, err := h.userService.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	if reactivated {
		dto.Respond(c, http.StatusOK, "user.reactivated", dto.ToUserResponse(user))
		return
	}
	dto.Respond(c, http.StatusCreated, "user.created", dto.ToUserResponse(user))
}

// UpdateUser substitui os campos de um usuário ativo
// @Summary  Replace a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id    path      int              true  "User ID"
// @Param    user  body      dto.UserRequest  true  "User"
// @Success  200   {object}  dto.Response{data=dto.UserResponse}
// @Failure  400   {object}  dto.ErrorResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Failure  409   {object}  dto.ErrorResponse
// @Router   /user/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id", "User")
	if !ok {
		return
	}
	req := bindBody[dto.UserRequest](c)

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "user.updated", dto.ToUserResponse(user), map[string]any{"ID": id})
}

// DeactivateUser desativa o usuário
// @Summary  Deactivate a user
// @Tags     users
// @Produce  json
// @Param    id   path      int  true  "User ID"
// @Success  200  {object}  dto.Response
// @Failure  404  {object}  dto.ErrorResponse
// @Failure  409  {object}  dto.ErrorResponse
// @Router   /user/{id} [delete]
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id, ok := parseID(c, "id", "User")
	if !ok {
		return
	}

	if err := h.userService.DeactivateUser(c.Request.Context(), id); err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "user.deactivated", nil, map[string]any{"ID": id})
}

// ListFavorites lista planetas, veículos e personagens favoritos do usuário
// @Summary  List a user's favorites
// @Tags     users
// @Produce  json
// @Param    id   path      int  true  "User ID"
// @Success  200  {object}  dto.Response{data=dto.FavoritesResponse}
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /user/{id}/favorites [get]
func (h *UserHandler) ListFavorites(c *gin.Context) {
	id, ok := parseID(c, "id", "User")
	if !ok {
		return
	}

	favorites, err := h.userService.ListFavorites(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "user.favorites", dto.ToFavoritesResponse(favorites), map[string]any{"ID": id})
}
