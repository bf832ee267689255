package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

// MovementHandler maneja las peticiones HTTP para ProductMovement (protegido).
type MovementHandler struct {
	uc       *inventory.RecordMovementUseCase
	validate *validator.Validate
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.RecordMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, validate: validator.New()}
}

// Record godoc
// @Summary      Registrar movimiento de stock
// @Description  ENTRY suma, EXIT resta. El stock nunca queda negativo: un EXIT
// @Description  mayor al disponible devuelve 409 sin efecto alguno.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.RecordMovement(c.Context(), GetUserName(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  false  "Filtrar por ítem"
// @Param        limit    query  int     false  "Límite"   default(20)
// @Param        offset   query  int     false  "Offset"   default(0)
// @Success      200      {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListMovements(c.Query("item_id"), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
