package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ActivityHandler expone la consulta del libro de actividad (solo lectura:
// los asientos se escriben únicamente desde los casos de uso de inventario).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler del libro de actividad.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Consultar el libro de actividad
// @Description  Filtros combinables con AND: item_id, sku (insensible a mayúsculas),
// @Description  type, performed_by (ID o nombre), warehouse_id, rango from/to.
// @Tags         activity
// @Produce      json
// @Param        item_id       query  string  false  "ID del ítem"
// @Param        sku           query  string  false  "SKU"
// @Param        type          query  string  false  "RECEIVE | ADJUSTMENT | TRANSFER | UPDATE"
// @Param        performed_by  query  string  false  "ID o nombre del operador"
// @Param        warehouse_id  query  string  false  "bodega origen o destino"
// @Param        from          query  string  false  "RFC 3339"
// @Param        to            query  string  false  "RFC 3339"
// @Param        limit         query  int     false  "tamaño de página"
// @Param        offset        query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ActivityListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var in dto.ActivityQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.uc.List(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
