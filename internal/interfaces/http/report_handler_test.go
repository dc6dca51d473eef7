package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/internal/application/reports"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
	apphttp "github.com/tu-usuario/inventory-track/internal/interfaces/http"
	"github.com/tu-usuario/inventory-track/pkg/logger"
)

type failingReportRepo struct{}

func (failingReportRepo) SalesByProduct(ctx context.Context) ([]repository.ProductSalesRow, error) {
	return nil, errors.New(`pq: password authentication failed for user "inventory" host=10.0.3.7`)
}

// Una falla de la DB en el reporte responde 500 con mensaje fijo: el
// detalle interno (driver, host, credenciales) nunca llega al cliente.
func TestSalesReport_ErrorInternoNoSeFiltra(t *testing.T) {
	uc := reports.NewUseCase(failingReportRepo{}, nil, logger.New(logger.Config{Env: "test", Level: "error"}))
	handler := apphttp.NewReportHandler(uc)

	app := fiber.New()
	app.Get("/api/sales-report", handler.SalesReport)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sales-report", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Failed to generate sales report")
	assert.NotContains(t, string(body), "password authentication")
	assert.NotContains(t, string(body), "10.0.3.7")
}
