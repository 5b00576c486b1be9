package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/application/usecase"
	"github.com/southgenetics/inventario/internal/domain/listquery"
)

// StockRequestHandler maneja solicitudes de reposición (protegido).
type StockRequestHandler struct {
	uc *usecase.StockRequestUseCase
}

// NewStockRequestHandler construye el handler.
func NewStockRequestHandler(uc *usecase.StockRequestUseCase) *StockRequestHandler {
	return &StockRequestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de stock
// @Tags         stock-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequestRequest  true  "Solicitud"
// @Success      201   {object}  dto.StockRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-requests [post]
func (h *StockRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes con filtro y orden en memoria
// @Tags         stock-requests
// @Security     Bearer
// @Produce      json
// @Param        priority     query  string  false  "urgente | alta | media | baja"
// @Param        status       query  string  false  "pendiente | aprobada | rechazada | completada"
// @Param        employee_id  query  string  false  "Filtra por empleado"
// @Param        sort_by      query  string  false  "requested_at | priority | employee"  default(requested_at)
// @Param        dir          query  string  false  "asc | desc"                          default(desc)
// @Success      200          {object}  dto.StockRequestListResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/stock-requests [get]
func (h *StockRequestHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), usecase.ListParams{
		Filters: listquery.RequestFilters{
			Priority:   c.Query("priority"),
			Status:     c.Query("status"),
			EmployeeID: c.Query("employee_id"),
		},
		SortBy: listquery.RequestSortKey(c.Query("sort_by")),
		Dir:    listquery.Direction(c.Query("dir")),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar solicitud (estado libre, sin máquina de estados)
// @Tags         stock-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateStockRequestRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.StockRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-requests/{id} [put]
func (h *StockRequestHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateStockRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar solicitud
// @Tags         stock-requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-requests/{id} [delete]
func (h *StockRequestHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "solicitud eliminada"})
}
