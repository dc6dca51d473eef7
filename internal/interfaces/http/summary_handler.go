package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/application/usecase"
)

// SummaryHandler expone los snapshots agregados: ventas, compras, gastos
// y desglose por categoría. Todos son CRUD planos sobre datos precalculados.
type SummaryHandler struct {
	uc *usecase.SummaryUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// --- /sales_summary/ ---

// CreateSalesSummary godoc
// @Summary      Crear snapshot de ventas
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesSummaryRequest  true  "Snapshot"
// @Success      201   {object}  dto.SalesSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /sales_summary [post]
func (h *SummaryHandler) CreateSalesSummary(c *fiber.Ctx) error {
	var in dto.CreateSalesSummaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSalesSummary(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSalesSummaries godoc
// @Summary      Listar snapshots de ventas
// @Tags         summaries
// @Produce      json
// @Success      200  {array}  dto.SalesSummaryResponse
// @Router       /sales_summary [get]
func (h *SummaryHandler) ListSalesSummaries(c *fiber.Ctx) error {
	out, err := h.uc.ListSalesSummaries(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) GetSalesSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesSummary(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) UpdateSalesSummary(c *fiber.Ctx) error {
	var in dto.CreateSalesSummaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSalesSummary(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) DeleteSalesSummary(c *fiber.Ctx) error {
	if err := h.uc.DeleteSalesSummary(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- /purchase_summary/ ---

// CreatePurchaseSummary godoc
// @Summary      Crear snapshot de compras
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseSummaryRequest  true  "Snapshot"
// @Success      201   {object}  dto.PurchaseSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /purchase_summary [post]
func (h *SummaryHandler) CreatePurchaseSummary(c *fiber.Ctx) error {
	var in dto.CreatePurchaseSummaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePurchaseSummary(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPurchaseSummaries godoc
// @Summary      Listar snapshots de compras
// @Tags         summaries
// @Produce      json
// @Success      200  {array}  dto.PurchaseSummaryResponse
// @Router       /purchase_summary [get]
func (h *SummaryHandler) ListPurchaseSummaries(c *fiber.Ctx) error {
	out, err := h.uc.ListPurchaseSummaries(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) GetPurchaseSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetPurchaseSummary(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) UpdatePurchaseSummary(c *fiber.Ctx) error {
	var in dto.CreatePurchaseSummaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePurchaseSummary(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) DeletePurchaseSummary(c *fiber.Ctx) error {
	if err := h.uc.DeletePurchaseSummary(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- /expense_summary/ ---

// CreateExpenseSummary godoc
// @Summary      Crear snapshot de gastos
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseSummaryRequest  true  "Snapshot"
// @Success      201   {object}  dto.ExpenseSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /expense_summary [post]
func (h *SummaryHandler) CreateExpenseSummary(c *fiber.Ctx) error {
	var in dto.CreateExpenseSummaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateExpenseSummary(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExpenseSummaries godoc
// @Summary      Listar snapshots de gastos
// @Tags         summaries
// @Produce      json
// @Success      200  {array}  dto.ExpenseSummaryResponse
// @Router       /expense_summary [get]
func (h *SummaryHandler) ListExpenseSummaries(c *fiber.Ctx) error {
	out, err := h.uc.ListExpenseSummaries(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) GetExpenseSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetExpenseSummary(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) UpdateExpenseSummary(c *fiber.Ctx) error {
	var in dto.CreateExpenseSummaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateExpenseSummary(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteExpenseSummary borra el snapshot y arrastra su desglose (FK cascade).
func (h *SummaryHandler) DeleteExpenseSummary(c *fiber.Ctx) error {
	if err := h.uc.DeleteExpenseSummary(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- /expense_by_category/ ---

// CreateExpenseByCategory godoc
// @Summary      Crear desglose por categoría
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseByCategoryRequest  true  "Desglose"
// @Success      201   {object}  dto.ExpenseByCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /expense_by_category [post]
func (h *SummaryHandler) CreateExpenseByCategory(c *fiber.Ctx) error {
	var in dto.CreateExpenseByCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateExpenseByCategory(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExpensesByCategory godoc
// @Summary      Listar desgloses por categoría
// @Tags         summaries
// @Produce      json
// @Success      200  {array}  dto.ExpenseByCategoryResponse
// @Router       /expense_by_category [get]
func (h *SummaryHandler) ListExpensesByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListExpensesByCategory(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) GetExpenseByCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetExpenseByCategory(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) UpdateExpenseByCategory(c *fiber.Ctx) error {
	var in dto.CreateExpenseByCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateExpenseByCategory(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SummaryHandler) DeleteExpenseByCategory(c *fiber.Ctx) error {
	if err := h.uc.DeleteExpenseByCategory(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
