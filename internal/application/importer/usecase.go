package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
	"github.com/tu-usuario/inventory-track/pkg/logger"
)

// Result acumulado de un import: filas creadas y errores por fila.
type Result struct {
	Imported int
	Errors   []string
}

// UseCase importa productos desde un CSV con encabezado. Las filas se
// procesan de a una y los errores se acumulan sin abortar el resto:
// un import puede terminar parcialmente aplicado.
type UseCase struct {
	products repository.ProductRepository
	log      *logger.Logger
}

// NewUseCase construye el importador de productos.
func NewUseCase(products repository.ProductRepository, log *logger.Logger) *UseCase {
	return &UseCase{products: products, log: log}
}

// ImportProducts lee el CSV y crea un producto por fila, todos a nombre de
// ownerID (el usuario autenticado que sube el archivo). Columnas: name y
// price obligatorias; stock_quantity y rating opcionales.
func (uc *UseCase) ImportProducts(r io.Reader, ownerID string) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error leyendo encabezado CSV: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	// name, price y stock_quantity son columnas obligatorias del formato;
	// una celda vacía de stock sí se tolera (queda en 0), la columna ausente no
	for _, required := range []string{"name", "price", "stock_quantity"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("columna requerida ausente en el encabezado: %s", required)
		}
	}

	result := &Result{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error importing product: unknown - %v", err))
			continue
		}
		name := field(record, cols, "name")
		if err := uc.importRow(record, cols, ownerID); err != nil {
			if name == "" {
				name = "unknown"
			}
			result.Errors = append(result.Errors, fmt.Sprintf("Error importing product: %s - %v", name, err))
			continue
		}
		result.Imported++
	}
	uc.log.Info().
		Int("imported", result.Imported).
		Int("failed", len(result.Errors)).
		Msg("import de productos terminado")
	return result, nil
}

func (uc *UseCase) importRow(record []string, cols map[string]int, ownerID string) error {
	name := field(record, cols, "name")
	if name == "" {
		return fmt.Errorf("name es obligatorio")
	}
	rawPrice := field(record, cols, "price")
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return fmt.Errorf("price inválido %q", rawPrice)
	}

	stock := 0
	if raw := field(record, cols, "stock_quantity"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("stock_quantity inválido %q", raw)
		}
	}

	var rating *float64
	if raw := field(record, cols, "rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("rating inválido %q", raw)
		}
		rating = &v
	}

	now := time.Now()
	return uc.products.Create(&entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Price:         price,
		Rating:        rating,
		StockQuantity: stock,
		UserID:        ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
