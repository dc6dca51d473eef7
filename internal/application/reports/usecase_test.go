package reports_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/internal/application/reports"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
	"github.com/tu-usuario/inventory-track/pkg/logger"
)

type fakeReportRepo struct {
	rows []repository.ProductSalesRow
	err  error
	hits int
}

func (f *fakeReportRepo) SalesByProduct(ctx context.Context) ([]repository.ProductSalesRow, error) {
	f.hits++
	return f.rows, f.err
}

// memCache caché en memoria con la misma semántica JSON que Redis.
type memCache struct {
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.sets++
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	return false, errors.New("redis: connection refused")
}
func (failingCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return errors.New("redis: connection refused")
}
func (failingCache) Delete(ctx context.Context, key string) error {
	return errors.New("redis: connection refused")
}

func testLog() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func TestSalesReport_SinVentasDevuelveFallback(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, nil, testLog())

	report, err := uc.SalesReport(context.Background())
	require.NoError(t, err)

	require.Len(t, report.SalesData, 3)
	assert.Equal(t, "iPhone 21", report.SalesData[0].ProductName)
	assert.Equal(t, "Samsung Galaxy", report.SalesData[1].ProductName)
	assert.Equal(t, "Google Pixel", report.SalesData[2].ProductName)
	assert.True(t, decimal.NewFromInt(3000).Equal(report.TotalSales))
}

// La llave JSON de cada fila es product__name (contrato heredado del endpoint).
func TestSalesReport_LlaveJSONDeFila(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, nil, testLog())

	report, err := uc.SalesReport(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"product__name":"iPhone 21"`)
	assert.Contains(t, string(raw), `"sales_data"`)
	assert.Contains(t, string(raw), `"total_sales"`)
}

func TestSalesReport_ConVentasAgregaTotales(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.ProductSalesRow{
		{ProductName: "Monitor", TotalSales: decimal.NewFromInt(500)},
		{ProductName: "Teclado", TotalSales: decimal.NewFromFloat(120.50)},
	}}
	uc := reports.NewUseCase(repo, nil, testLog())

	report, err := uc.SalesReport(context.Background())
	require.NoError(t, err)

	require.Len(t, report.SalesData, 2)
	assert.Equal(t, "Monitor", report.SalesData[0].ProductName)
	assert.True(t, decimal.NewFromFloat(620.50).Equal(report.TotalSales))
}

func TestSalesReport_SegundaLecturaVieneDelCache(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.ProductSalesRow{
		{ProductName: "Monitor", TotalSales: decimal.NewFromInt(500)},
	}}
	cache := newMemCache()
	uc := reports.NewUseCase(repo, cache, testLog())

	first, err := uc.SalesReport(context.Background())
	require.NoError(t, err)
	second, err := uc.SalesReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.hits, "la segunda lectura no debe tocar la DB")
	assert.Equal(t, 1, cache.sets)
	assert.True(t, first.TotalSales.Equal(second.TotalSales))
}

// Invalidar tras una mutación de ventas fuerza la relectura desde la DB
// sin esperar a que venza el TTL.
func TestSalesReport_InvalidateFuerzaRelectura(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.ProductSalesRow{
		{ProductName: "Monitor", TotalSales: decimal.NewFromInt(500)},
	}}
	cache := newMemCache()
	uc := reports.NewUseCase(repo, cache, testLog())

	_, err := uc.SalesReport(context.Background())
	require.NoError(t, err)

	uc.Invalidate(context.Background())
	repo.rows = append(repo.rows, repository.ProductSalesRow{
		ProductName: "Teclado", TotalSales: decimal.NewFromInt(100),
	})

	report, err := uc.SalesReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, repo.hits, "tras invalidar, la lectura vuelve a la DB")
	assert.True(t, decimal.NewFromInt(600).Equal(report.TotalSales))
}

// Redis caído degrada a consulta directa, nunca falla la petición.
func TestSalesReport_CacheCaidoNoRompe(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.ProductSalesRow{
		{ProductName: "Monitor", TotalSales: decimal.NewFromInt(500)},
	}}
	uc := reports.NewUseCase(repo, failingCache{}, testLog())

	report, err := uc.SalesReport(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.SalesData, 1)
}

func TestSalesReport_ErrorDeDBSePropaga(t *testing.T) {
	repo := &fakeReportRepo{err: errors.New("conexión perdida")}
	uc := reports.NewUseCase(repo, nil, testLog())

	report, err := uc.SalesReport(context.Background())
	assert.Error(t, err)
	assert.Nil(t, report)
}
