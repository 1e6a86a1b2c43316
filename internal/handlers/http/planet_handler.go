package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/starwars-api/internal/handlers/dto"
	"github.com/rafabene/starwars-api/internal/services"
)

// PlanetHandler expõe o CRUD de planetas
type PlanetHandler struct {
	planetService *services.PlanetService
}

func NewPlanetHandler(planetService *services.PlanetService) *PlanetHandler {
	return &PlanetHandler{planetService: planetService}
}

// ListPlanets
// @Summary  List planets
// @Tags     planets
// @Produce  json
// @Success  200  {object}  dto.Response{data=[]dto.PlanetResponse}
// @Router   /planet [get]
func (h *PlanetHandler) ListPlanets(c *gin.Context) {
	planets, err := h.planetService.ListPlanets(c.Request.Context())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "planet.list", dto.ToPlanetResponses(planets))
}

// GetPlanet
// @Summary  Get a planet
// @Tags     planets
// @Produce  json
// @Param    id   path      int  true  "Planet ID"
// @Success  200  {object}  dto.Response{data=dto.PlanetResponse}
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /planet/{id} [get]
func (h *PlanetHandler) GetPlanet(c *gin.Context) {
	id, ok := parseID(c, "id", "Planet")
	if !ok {
		return
	}

	planet, err := h.planetService.GetPlanet(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "planet.get", dto.ToPlanetResponse(planet))
}

// CreatePlanet
// @Summary  Create a planet
// @Tags     planets
// @Accept   json
// @Produce  json
// @Param    planet  body      dto.PlanetRequest  true  "Planet"
// @Success  201     {object}  dto.Response{data=dto.PlanetResponse}
// @Failure  400     {object}  dto.ErrorResponse
// @Failure  409     {object}  dto.ErrorResponse
// @Router   /planet [post]
func (h *PlanetHandler) CreatePlanet(c *gin.Context) {
	req := bindBody[dto.PlanetRequest](c)

	planet, err := h.planetService.CreatePlanet(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusCreated, "planet.created", dto.ToPlanetResponse(planet))
}

// UpdatePlanet
// @Summary  Replace a planet
// @Tags     planets
// @Accept   json
// @Produce  json
// @Param    id      path      int                true  "Planet ID"
// @Param    planet  body      dto.PlanetRequest  true  "Planet"
// @Success  200     {object}  dto.Response{data=dto.PlanetResponse}
// @Failure  400     {object}  dto.ErrorResponse
// @Failure  404     {object}  dto.ErrorResponse
// @Failure  409     {object}  dto.ErrorResponse
// @Router   /planet/{id} [put]
func (h *PlanetHandler) UpdatePlanet(c *gin.Context) {
	id, ok := parseID(c, "id", "Planet")
	if !ok {
		return
	}
	req := bindBody[dto.PlanetRequest](c)

	planet, err := h.planetService.UpdatePlanet(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "planet.updated", dto.ToPlanetResponse(planet), map[string]any{"ID": id})
}

// DeletePlanet
// @Summary  Delete a planet without favorites
// @Tags     planets
// @Produce  json
// @Param    id   path      int  true  "Planet ID"
// @Success  200  {object}  dto.Response
// @Failure  400  {object}  dto.ErrorResponse  "referenced by favorites"
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /planet/{id} [delete]
func (h *PlanetHandler) DeletePlanet(c *gin.Context) {
	id, ok := parseID(c, "id", "Planet")
	if !ok {
		return
	}

	if err := h.planetService.DeletePlanet(c.Request.Context(), id); err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "planet.deleted", nil, map[string]any{"ID": id})
}
