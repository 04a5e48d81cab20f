package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
	"github.com/jhoicas/settlement-admin/internal/domain"
)

// SettlementHandler reportes de liquidación.
type SettlementHandler struct {
	uc *usecase.SettlementUseCase
}

func NewSettlementHandler(uc *usecase.SettlementUseCase) *SettlementHandler {
	return &SettlementHandler{uc: uc}
}

// StatisticsRows godoc
// @Summary      Estadísticas jerárquicas aplanadas
// @Tags         settlements
// @Security     BearerAuth
// @Produce      json
// @Param        startDate       query  string  false  "YYYY-MM-DD"
// @Param        endDate         query  string  false  "YYYY-MM-DD"
// @Param        companyId       query  int     false  "Organización raíz"
// @Param        paymentPurpose  query  string  false  "DELIVERY_FEE | MONTHLY_RENT"
// @Success      200  {object}  dto.StatisticsResponse
// @Router       /api/settlements/statistics/rows [get]
func (h *SettlementHandler) StatisticsRows(c *fiber.Ctx) error {
	ws, in, err := h.query(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Statistics(c.UserContext(), ws, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Reporte de estadísticas en PDF
// @Tags         settlements
// @Security     BearerAuth
// @Produce      application/pdf
// @Router       /api/settlements/statistics/report.pdf [get]
func (h *SettlementHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, usecase.FormatPDF)
}

// ExportXLSX godoc
// @Summary      Reporte de estadísticas en Excel
// @Tags         settlements
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router       /api/settlements/statistics/report.xlsx [get]
func (h *SettlementHandler) ExportXLSX(c *fiber.Ctx) error {
	return h.export(c, usecase.FormatXLSX)
}

func (h *SettlementHandler) export(c *fiber.Ctx, format string) error {
	ws, in, err := h.query(c)
	if err != nil {
		return respondError(c, err)
	}
	report, err := h.uc.Export(c.UserContext(), ws, in, format)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, report.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, report.Filename))
	return c.Send(report.Body)
}

func (h *SettlementHandler) BranchCommission(c *fiber.Ctx) error {
	ws, in, err := h.query(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.BranchCommission(c.UserContext(), ws, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SettlementHandler) Amounts(c *fiber.Ctx) error {
	ws, in, err := h.query(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Amounts(c.UserContext(), ws, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SettlementHandler) query(c *fiber.Ctx) (*session.Workspace, dto.StatisticsQuery, error) {
	var in dto.StatisticsQuery
	ws, err := requireWorkspace(c)
	if err != nil {
		return nil, in, err
	}
	if err := c.QueryParser(&in); err != nil {
		return nil, in, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return ws, in, nil
}
