package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/application/ledger"
	"github.com/southgenetics/inventario/internal/application/usecase"
)

// AssignmentHandler maneja asignaciones de productos a empleados (protegido).
// Crear y devolver una asignación pasan por el motor del ledger: el
// movimiento y la fila de asignación comparten transacción.
type AssignmentHandler struct {
	movements *ledger.MovementUseCase
	uc        *usecase.AssignmentUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(movements *ledger.MovementUseCase, uc *usecase.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{movements: movements, uc: uc}
}

// List godoc
// @Summary      Listar asignaciones con nombres de producto y empleado
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AssignmentResponse
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Asignar producto a empleado (descuenta stock)
// @Tags         assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "Asignación"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.movements.AssignProduct(c.UserContext(), in.ProductID, in.EmployeeID, in.Quantity, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "producto asignado"})
}

// Delete godoc
// @Summary      Devolver asignación (repone stock)
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.movements.UnassignProduct(c.UserContext(), id, GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "asignación devuelta"})
}
