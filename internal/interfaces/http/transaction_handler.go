package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario/internal/application/dto"
	"github.com/southgenetics/inventario/internal/application/ledger"
	"github.com/southgenetics/inventario/internal/application/usecase"
	"github.com/southgenetics/inventario/internal/domain/listquery"
)

// TransactionHandler maneja el ledger de movimientos (protegido).
// Los movimientos se crean únicamente vía el motor del ledger; el
// listado se filtra y ordena en memoria.
type TransactionHandler struct {
	movements *ledger.MovementUseCase
	uc        *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(movements *ledger.MovementUseCase, uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{movements: movements, uc: uc}
}

// Record godoc
// @Summary      Registrar movimiento de stock (in/out)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.movements.RecordMovement(c.UserContext(), ledger.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Notes:     in.Notes,
		ActorID:   GetUserID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "movimiento registrado"})
}

// List godoc
// @Summary      Listar movimientos con filtro y orden en memoria
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  false  "in | out"
// @Param        product_id  query  string  false  "Filtra por producto"
// @Param        sort_by     query  string  false  "created_at | quantity | type"  default(created_at)
// @Param        dir         query  string  false  "asc | desc"                    default(desc)
// @Success      200         {object}  dto.TransactionListResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), usecase.TransactionListParams{
		Filters: listquery.TransactionFilters{
			Type:      c.Query("type"),
			ProductID: c.Query("product_id"),
		},
		SortBy: listquery.TransactionSortKey(c.Query("sort_by")),
		Dir:    listquery.Direction(c.Query("dir")),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Historial completo de movimientos de un producto
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transactions [get]
func (h *TransactionHandler) ListByProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.ListByProduct(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
