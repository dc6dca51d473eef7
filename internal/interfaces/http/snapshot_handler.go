package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/application/usecase"
)

// SnapshotHandler expone los snapshots por producto: niveles de stock,
// márgenes y tendencias de venta.
type SnapshotHandler struct {
	uc *usecase.SnapshotUseCase
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(uc *usecase.SnapshotUseCase) *SnapshotHandler {
	return &SnapshotHandler{uc: uc}
}

// --- /inventory_levels/ ---

// CreateInventoryLevel godoc
// @Summary      Crear snapshot de stock
// @Tags         snapshots
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryLevelRequest  true  "Snapshot"
// @Success      201   {object}  dto.InventoryLevelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /inventory_levels [post]
func (h *SnapshotHandler) CreateInventoryLevel(c *fiber.Ctx) error {
	var in dto.CreateInventoryLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateInventoryLevel(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListInventoryLevels godoc
// @Summary      Listar snapshots de stock
// @Tags         snapshots
// @Produce      json
// @Success      200  {array}  dto.InventoryLevelResponse
// @Router       /inventory_levels [get]
func (h *SnapshotHandler) ListInventoryLevels(c *fiber.Ctx) error {
	out, err := h.uc.ListInventoryLevels(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SnapshotHandler) GetInventoryLevel(c *fiber.Ctx) error {
	out, err := h.uc.GetInventoryLevel(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SnapshotHandler) UpdateInventoryLevel(c *fiber.Ctx) error {
	var in dto.UpdateInventoryLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateInventoryLevel(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SnapshotHandler) DeleteInventoryLevel(c *fiber.Ctx) error {
	if err := h.uc.DeleteInventoryLevel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- /profit_margins/ ---

// CreateProfitMargin godoc
// @Summary      Crear snapshot de margen
// @Tags         snapshots
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProfitMarginRequest  true  "Snapshot"
// @Success      201   {object}  dto.ProfitMarginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /profit_margins [post]
func (h *SnapshotHandler) CreateProfitMargin(c *fiber.Ctx) error {
	var in dto.CreateProfitMarginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateProfitMargin(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProfitMargins godoc
// @Summary      Listar snapshots de margen
// @Tags         snapshots
// @Produce      json
// @Success      200  {array}  dto.ProfitMarginResponse
// @Router       /profit_margins [get]
func (h *SnapshotHandler) ListProfitMargins(c *fiber.Ctx) error {
	out, err := h.uc.ListProfitMargins(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SnapshotHandler) GetProfitMargin(c *fiber.Ctx) error {
	out, err := h.uc.GetProfitMargin(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SnapshotHandler) UpdateProfitMargin(c *fiber.Ctx) error {
	var in dto.CreateProfitMarginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProfitMargin(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SnapshotHandler) DeleteProfitMargin(c *fiber.Ctx) error {
	if err := h.uc.DeleteProfitMargin(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- /sales_trends/ ---

// CreateSalesTrend godoc
// @Summary      Crear snapshot de tendencia
// @Tags         snapshots
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesTrendRequest  true  "Snapshot"
// @Success      201   {object}  dto.SalesTrendResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /sales_trends [post]
func (h *SnapshotHandler) CreateSalesTrend(c *fiber.Ctx) error {
	var in dto.CreateSalesTrendRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSalesTrend(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSalesTrends godoc
// @Summary      Listar snapshots de tendencia
// @Tags         snapshots
// @Produce      json
// @Success      200  {array}  dto.SalesTrendResponse
// @Router       /sales_trends [get]
func (h *SnapshotHandler) ListSalesTrends(c *fiber.Ctx) error {
	out, err := h.uc.ListSalesTrends(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SnapshotHandler) GetSalesTrend(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesTrend(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SnapshotHandler) UpdateSalesTrend(c *fiber.Ctx) error {
	var in dto.CreateSalesTrendRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSalesTrend(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SnapshotHandler) DeleteSalesTrend(c *fiber.Ctx) error {
	if err := h.uc.DeleteSalesTrend(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
