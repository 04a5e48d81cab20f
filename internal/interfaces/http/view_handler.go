package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
)

// ViewHandler formulario de búsqueda y listado de cada vista (:view = payments, merchants, ...).
type ViewHandler struct {
	uc *usecase.ViewUseCase
}

func NewViewHandler(uc *usecase.ViewUseCase) *ViewHandler {
	return &ViewHandler{uc: uc}
}

// Get godoc
// @Summary      Estado de una vista
// @Description  Sin refresh devuelve la última página cargada; con refresh=true recarga.
// @Tags         views
// @Security     BearerAuth
// @Produce      json
// @Param        view     path   string  true   "payments | unregistered-terminals | merchants | companies | terminals | commissions | settlement-period | settlement-daily"
// @Param        refresh  query  bool    false  "recargar"
// @Success      200  {object}  dto.ViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/views/{view} [get]
func (h *ViewHandler) Get(c *fiber.Ctx) error {
	ws, err := requireWorkspace(c)
	if err != nil {
		return respondError(c, err)
	}
	var out *dto.ViewResponse
	if c.QueryBool("refresh") {
		out, err = h.uc.Load(c.UserContext(), ws, c.Params("view"))
	} else {
		out, err = h.uc.Current(ws, c.Params("view"))
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ViewHandler) DateTab(c *fiber.Ctx) error {
	var in dto.DateTabRequest
	return h.withBody(c, &in, func() (*dto.ViewResponse, error) {
		return h.uc.SelectTab(GetWorkspace(c), c.Params("view"), in)
	})
}

func (h *ViewHandler) Dates(c *fiber.Ctx) error {
	var in dto.DatesRequest
	return h.withBody(c, &in, func() (*dto.ViewResponse, error) {
		return h.uc.SetDates(GetWorkspace(c), c.Params("view"), in)
	})
}

func (h *ViewHandler) Condition(c *fiber.Ctx) error {
	var in dto.ConditionRequest
	return h.withBody(c, &in, func() (*dto.ViewResponse, error) {
		return h.uc.SetCondition(GetWorkspace(c), c.Params("view"), in)
	})
}

func (h *ViewHandler) Keyword(c *fiber.Ctx) error {
	var in dto.KeywordRequest
	return h.withBody(c, &in, func() (*dto.ViewResponse, error) {
		return h.uc.SetKeyword(GetWorkspace(c), c.Params("view"), in)
	})
}

func (h *ViewHandler) Page(c *fiber.Ctx) error {
	var in dto.PageRequest
	return h.withBody(c, &in, func() (*dto.ViewResponse, error) {
		return h.uc.SetPage(c.UserContext(), GetWorkspace(c), c.Params("view"), in)
	})
}

func (h *ViewHandler) Size(c *fiber.Ctx) error {
	var in dto.SizeRequest
	return h.withBody(c, &in, func() (*dto.ViewResponse, error) {
		return h.uc.SetSize(c.UserContext(), GetWorkspace(c), c.Params("view"), in)
	})
}

// Search godoc
// @Summary      Buscar (página 0) y recargar
// @Tags         views
// @Security     BearerAuth
// @Produce      json
// @Param        view  path  string  true  "vista"
// @Success      200  {object}  dto.ViewResponse
// @Router       /api/views/{view}/search [post]
func (h *ViewHandler) Search(c *fiber.Ctx) error {
	return h.withBody(c, nil, func() (*dto.ViewResponse, error) {
		return h.uc.Search(c.UserContext(), GetWorkspace(c), c.Params("view"))
	})
}

// Reset restaura los valores por defecto (conserva el tamaño de página) y recarga.
func (h *ViewHandler) Reset(c *fiber.Ctx) error {
	return h.withBody(c, nil, func() (*dto.ViewResponse, error) {
		return h.uc.Reset(c.UserContext(), GetWorkspace(c), c.Params("view"))
	})
}

// withBody parsea el cuerpo (si in != nil) y ejecuta fn con un workspace ya verificado.
func (h *ViewHandler) withBody(c *fiber.Ctx, in interface{}, fn func() (*dto.ViewResponse, error)) error {
	if _, err := requireWorkspace(c); err != nil {
		return respondError(c, err)
	}
	if in != nil {
		if err := c.BodyParser(in); err != nil {
			return badBody(c)
		}
	}
	out, err := fn()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
