package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/infrastructure/metrics"
)

// ItemHandler expone el CRUD de ítems de inventario y el ajuste manual de stock.
type ItemHandler struct {
	uc *inventory.ItemUseCase
}

// NewItemHandler construye el handler de ítems.
func NewItemHandler(uc *inventory.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

func mutationResult(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Create godoc
// @Summary      Dar de alta inventario en una bodega
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	metrics.ItemMutationsTotal.WithLabelValues("create", mutationResult(err)).Inc()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Consultar ítem
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ítems de una bodega
// @Tags         items
// @Produce      json
// @Param        warehouse_id  query  string  true   "ID de la bodega"
// @Param        limit         query  int     false  "tamaño de página"
// @Param        offset        query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	if warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.ListByWarehouse(c.Context(), warehouseID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Ítems bajo su nivel de reorden
// @Tags         items
// @Produce      json
// @Param        warehouse_id  query  string  false  "limitar a una bodega"
// @Param        limit         query  int     false  "tamaño de página"
// @Param        offset        query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ItemListResponse
// @Security     BearerAuth
// @Router       /api/items/low-stock [get]
func (h *ItemHandler) LowStock(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.ListLowStock(c.Context(), c.Query("warehouse_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem
// @Description  Campos omitidos no se tocan. Cambiar warehouse_id reubica el ítem.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a modificar"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	metrics.ItemMutationsTotal.WithLabelValues("update", mutationResult(err)).Inc()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         items
// @Param        id  path  string  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Context(), c.Params("id"))
	metrics.ItemMutationsTotal.WithLabelValues("delete", mutationResult(err)).Inc()
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Adjust godoc
// @Summary      Ajuste manual de stock
// @Description  Aplica un delta con signo a la cantidad del ítem y registra un asiento ADJUSTMENT.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del ítem"
// @Param        body  body  dto.AdjustQuantityRequest  true  "delta y notas"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items/{id}/adjust [post]
func (h *ItemHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.AdjustQuantity(c.Context(), GetUserID(c), c.Params("id"), in.QuantityChange, in.Notes)
	metrics.ItemMutationsTotal.WithLabelValues("adjust", mutationResult(err)).Inc()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
