package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

// AlertHandler expone la proyección de alertas de stock bajo (protegido).
// El conjunto de alertas reconocidas vive en el cliente: llega en cada
// petición como query param y no se persiste en el servidor.
type AlertHandler struct {
	uc *inventory.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *inventory.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// Active godoc
// @Summary      Alertas de stock bajo activas
// @Description  Ítems con quantity <= min_quantity, excluyendo los ids que el
// @Description  cliente ya reconoció (query acked, separados por coma).
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        acked  query  string  false  "IDs reconocidos, separados por coma"
// @Success      200    {array}  dto.AlertItem
// @Router       /api/alerts [get]
func (h *AlertHandler) Active(c *fiber.Ctx) error {
	acked := inventory.NewAckSet()
	if raw := c.Query("acked"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				acked.Acknowledge(id)
			}
		}
	}
	out, err := h.uc.Active(acked)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
