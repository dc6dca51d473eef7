package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/internal/application/importer"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/pkg/logger"
)

type memProductRepo struct {
	created []*entity.Product
}

func (m *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range m.created {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	m.created = append(m.created, p)
	return nil
}
func (m *memProductRepo) GetByID(id string) (*entity.Product, error) { return nil, nil }
func (m *memProductRepo) Update(p *entity.Product) error             { return nil }
func (m *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return m.created, nil
}
func (m *memProductRepo) Delete(id string) error { return nil }

func buildImporter(t *testing.T) (*importer.UseCase, *memProductRepo) {
	t.Helper()
	repo := &memProductRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return importer.NewUseCase(repo, log), repo
}

func TestImportProducts_TodasLasFilasValidas(t *testing.T) {
	uc, repo := buildImporter(t)
	csv := "name,price,stock_quantity,rating\n" +
		"iPhone 21,1200,15,4.5\n" +
		"Samsung Galaxy,1000,20,\n"

	result, err := uc.ImportProducts(strings.NewReader(csv), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)
	require.Len(t, repo.created, 2)
	assert.Equal(t, "owner-1", repo.created[0].UserID)
	require.NotNil(t, repo.created[0].Rating)
	assert.InDelta(t, 4.5, *repo.created[0].Rating, 0.001)
	assert.Nil(t, repo.created[1].Rating)
}

// Las filas malas no abortan el import: lo bueno queda persistido y los
// errores se devuelven por fila.
func TestImportProducts_ParcialConErrores(t *testing.T) {
	uc, repo := buildImporter(t)
	csv := "name,price,stock_quantity\n" +
		"Monitor,250,10\n" +
		",100,5\n" +
		"Teclado,no-es-precio,3\n" +
		"Mouse,45,2\n"

	result, err := uc.ImportProducts(strings.NewReader(csv), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Error importing product: unknown -")
	assert.Contains(t, result.Errors[1], "Error importing product: Teclado -")
	assert.Len(t, repo.created, 2)
}

func TestImportProducts_ColumnasEnOtroOrden(t *testing.T) {
	uc, repo := buildImporter(t)
	csv := "PRICE,Stock_Quantity,Name\n99.90,,Audífonos\n"

	result, err := uc.ImportProducts(strings.NewReader(csv), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Audífonos", repo.created[0].Name)
	assert.Equal(t, "99.9", repo.created[0].Price.String())
	assert.Equal(t, 0, repo.created[0].StockQuantity, "celda vacía de stock queda en 0")
}

func TestImportProducts_SinEncabezadoFalla(t *testing.T) {
	uc, _ := buildImporter(t)
	_, err := uc.ImportProducts(strings.NewReader(""), "owner-1")
	assert.Error(t, err)
}

// La columna stock_quantity es parte del formato: si no viene en el
// encabezado el import completo se rechaza antes de procesar filas.
func TestImportProducts_EncabezadoSinStockQuantity(t *testing.T) {
	uc, repo := buildImporter(t)
	csv := "name,price\nMonitor,250\n"

	_, err := uc.ImportProducts(strings.NewReader(csv), "owner-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock_quantity")
	assert.Empty(t, repo.created)
}

// Un duplicado del repo también entra como error de fila.
func TestImportProducts_DuplicadoReportadoPorFila(t *testing.T) {
	uc, repo := buildImporter(t)
	csv := "name,price,stock_quantity\nCable HDMI,15,4\nCable HDMI,15,4\n"

	result, err := uc.ImportProducts(strings.NewReader(csv), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Error importing product: Cable HDMI -")
	assert.Len(t, repo.created, 1)
}
