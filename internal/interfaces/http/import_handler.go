package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/application/importer"
)

// ImportHandler recibe el CSV de productos por multipart.
type ImportHandler struct {
	uc *importer.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportProducts godoc
// @Summary      Importar productos desde CSV
// @Description  Procesa fila por fila y acumula errores sin abortar: un 400
// @Description  con lista de errores puede dejar filas válidas ya creadas.
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV con columnas name, price, stock_quantity, rating"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ImportErrorsResponse
// @Router       /api/import-products [post]
func (h *ImportHandler) ImportProducts(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales requeridas"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo 'file' requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()

	result, err := h.uc.ImportProducts(file, ownerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CSV", Message: err.Error()})
	}
	if len(result.Errors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ImportErrorsResponse{Errors: result.Errors})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Products imported successfully!"})
}
