package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/starwars-api/internal/handlers/dto"
	"github.com/rafabene/starwars-api/internal/services"
)

// CharacterHandler expõe o CRUD de personagens
type CharacterHandler struct {
	characterService *services.CharacterService
}

func NewCharacterHandler(characterService *services.CharacterService) *CharacterHandler {
	return &CharacterHandler{characterService: characterService}
}

// ListCharacters
// @Summary  List characters
// @Tags     characters
// @Produce  json
// @Success  200  {object}  dto.Response{data=[]dto.CharacterResponse}
// @Router   /character [get]
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	characters, err := h.characterService.ListCharacters(c.Request.Context())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "character.list", dto.ToCharacterResponses(characters))
}

// GetCharacter
// @Summary  Get a character
// @Tags     characters
// @Produce  json
// @Param    id   path      int  true  "Character ID"
// @Success  200  {object}  dto.Response{data=dto.CharacterResponse}
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /character/{id} [get]
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	id, ok := parseID(c, "id", "Character")
	if !ok {
		return
	}

	character, err := h.characterService.GetCharacter(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "character.get", dto.ToCharacterResponse(character))
}

// CreateCharacter
// @Summary  Create a character
// @Tags     characters
// @Accept   json
// @Produce  json
// @Param    character  body      dto.CharacterRequest  true  "Character"
// @Success  201     {object}  dto.Response{data=dto.CharacterResponse}
// @Failure  400     {object}  dto.ErrorResponse
// @Router   /character [post]
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	req := bindBody[dto.CharacterRequest](c)

	character, err := h.characterService.CreateCharacter(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusCreated, "character.created", dto.ToCharacterResponse(character))
}

// UpdateCharacter
// @Summary  Replace a character
// @Tags     characters
// @Accept   json
// @Produce  json
// @Param    id      path      int                true  "Character ID"
// @Param    character  body      dto.CharacterRequest  true  "Character"
// @Success  200     {object}  dto.Response{data=dto.CharacterResponse}
// @Failure  400     {object}  dto.ErrorResponse
// @Failure  404     {object}  dto.ErrorResponse
// @Router   /character/{id} [put]
func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	id, ok := parseID(c, "id", "Character")
	if !ok {
		return
	}
	req := bindBody[dto.CharacterRequest](c)

	character, err := h.characterService.UpdateCharacter(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "character.updated", dto.ToCharacterResponse(character), map[string]any{"ID": id})
}

// DeleteCharacter
// @Summary  Delete a character and its favorites
// @Tags     characters
// @Produce  json
// @Param    id   path      int  true  "Character ID"
// @Success  200  {object}  dto.Response
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /character/{id} [delete]
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	id, ok := parseID(c, "id", "Character")
	if !ok {
		return
	}

	if err := h.characterService.DeleteCharacter(c.Request.Context(), id); err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "character.deleted", nil, map[string]any{"ID": id})
}
