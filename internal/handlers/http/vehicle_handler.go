package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/starwars-api/internal/handlers/dto"
	"github.com/rafabene/starwars-api/internal/services"
)

// VehicleHandler expõe o CRUD de veículos
type VehicleHandler struct {
	vehicleService *services.VehicleService
}

func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// ListVehicles
// @Summary  List vehicles
// @Tags     vehicles
// @Produce  json
// @Success  200  {object}  dto.Response{data=[]dto.VehicleResponse}
// @Router   /vehicle [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "vehicle.list", dto.ToVehicleResponses(vehicles))
}

// GetVehicle
// @Summary  Get a vehicle
// @Tags     vehicles
// @Produce  json
// @Param    id   path      int  true  "Vehicle ID"
// @Success  200  {object}  dto.Response{data=dto.VehicleResponse}
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /vehicle/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := parseID(c, "id", "Vehicle")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "vehicle.get", dto.ToVehicleResponse(vehicle))
}

// CreateVehicle
// @Summary  Create a vehicle
// @Tags     vehicles
// @Accept   json
// @Produce  json
// @Param    vehicle  body      dto.VehicleRequest  true  "Vehicle"
// @Success  201     {object}  dto.Response{data=dto.VehicleResponse}
// @Failure  400     {object}  dto.ErrorResponse
// @Failure  409     {object}  dto.ErrorResponse
// @Router   /vehicle [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	req := bindBody[dto.VehicleRequest](c)

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusCreated, "vehicle.created", dto.ToVehicleResponse(vehicle))
}

// UpdateVehicle
// @Summary  Replace a vehicle
// @Tags     vehicles
// @Accept   json
// @Produce  json
// @Param    id      path      int                true  "Vehicle ID"
// @Param    vehicle  body      dto.VehicleRequest  true  "Vehicle"
// @Success  200     {object}  dto.Response{data=dto.VehicleResponse}
// @Failure  400     {object}  dto.ErrorResponse
// @Failure  404     {object}  dto.ErrorResponse
// @Failure  409     {object}  dto.ErrorResponse
// @Router   /vehicle/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, ok := parseID(c, "id", "Vehicle")
	if !ok {
		return
	}
	req := bindBody[dto.VehicleRequest](c)

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "vehicle.updated", dto.ToVehicleResponse(vehicle), map[string]any{"ID": id})
}

// DeleteVehicle
// @Summary  Delete a vehicle without favorites
// @Tags     vehicles
// @Produce  json
// @Param    id   path      int  true  "Vehicle ID"
// @Success  200  {object}  dto.Response
// @Failure  400  {object}  dto.ErrorResponse  "referenced by favorites"
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /vehicle/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, ok := parseID(c, "id", "Vehicle")
	if !ok {
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), id); err != nil {
		dto.WriteError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "vehicle.deleted", nil, map[string]any{"ID": id})
}
