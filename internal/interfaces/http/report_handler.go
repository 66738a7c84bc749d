package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/report"
)

// ReportHandler expone reportes descargables (XLSX y PDF).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

func sendAttachment(c *fiber.Ctx, contentType, prefix, ext string, data []byte) error {
	filename := fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ActivityXLSX godoc
// @Summary      Exportar el libro de actividad a Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        sku           query  string  false  "SKU"
// @Param        type          query  string  false  "tipo de asiento"
// @Param        warehouse_id  query  string  false  "bodega origen o destino"
// @Param        from          query  string  false  "RFC 3339"
// @Param        to            query  string  false  "RFC 3339"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/activity.xlsx [get]
func (h *ReportHandler) ActivityXLSX(c *fiber.Ctx) error {
	var in dto.ActivityQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
	}
	data, err := h.uc.ActivityXLSX(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, contentTypeXLSX, "actividad", "xlsx", data)
}

// StockXLSX godoc
// @Summary      Exportar el stock por bodega a Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /api/reports/stock.xlsx [get]
func (h *ReportHandler) StockXLSX(c *fiber.Ctx) error {
	data, err := h.uc.StockXLSX(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, contentTypeXLSX, "stock", "xlsx", data)
}

// StockPDF godoc
// @Summary      Exportar el stock por bodega a PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	data, err := h.uc.StockPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, contentTypePDF, "stock", "pdf", data)
}
