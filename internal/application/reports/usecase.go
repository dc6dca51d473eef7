package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
	"github.com/tu-usuario/inventory-track/pkg/logger"
)

const (
	salesReportCacheKey = "reports:sales-by-product"
	salesReportCacheTTL = 60 * time.Second
)

// Cache puerto de caché de lectura para reportes. Los errores del caché
// nunca fallan la petición, solo la degradan a consulta directa.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// UseCase arma el reporte de ventas por producto. Cuando no hay ventas
// devuelve el dataset de demostración que los clientes del API original
// esperan en vacío.
type UseCase struct {
	reports repository.ReportRepository
	cache   Cache
	log     *logger.Logger
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(reports repository.ReportRepository, cache Cache, log *logger.Logger) *UseCase {
	return &UseCase{reports: reports, cache: cache, log: log}
}

// fallbackReport dataset fijo que se sirve cuando no existe ninguna venta.
func fallbackReport() *dto.SalesReportResponse {
	rows := []dto.SalesReportRow{
		{ProductName: "iPhone 21", TotalSales: decimal.NewFromInt(1200)},
		{ProductName: "Samsung Galaxy", TotalSales: decimal.NewFromInt(1000)},
		{ProductName: "Google Pixel", TotalSales: decimal.NewFromInt(800)},
	}
	return &dto.SalesReportResponse{SalesData: rows, TotalSales: decimal.NewFromInt(3000)}
}

// SalesReport agrupa las ventas por nombre de producto y suma totalAmount.
// La respuesta se cachea 60s; sin ventas reales aplica el fallback.
func (uc *UseCase) SalesReport(ctx context.Context) (*dto.SalesReportResponse, error) {
	if uc.cache != nil {
		var cached dto.SalesReportResponse
		hit, err := uc.cache.Get(ctx, salesReportCacheKey, &cached)
		if err != nil {
			uc.log.Warn().Err(err).Msg("caché de reportes no disponible")
		} else if hit {
			return &cached, nil
		}
	}

	rows, err := uc.reports.SalesByProduct(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("fallo generando el reporte de ventas")
		return nil, err
	}

	var report *dto.SalesReportResponse
	if len(rows) == 0 {
		report = fallbackReport()
	} else {
		total := decimal.Zero
		data := make([]dto.SalesReportRow, 0, len(rows))
		for _, r := range rows {
			data = append(data, dto.SalesReportRow{ProductName: r.ProductName, TotalSales: r.TotalSales})
			total = total.Add(r.TotalSales)
		}
		report = &dto.SalesReportResponse{SalesData: data, TotalSales: total}
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, salesReportCacheKey, report, salesReportCacheTTL); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo cachear el reporte")
		}
	}
	return report, nil
}

// Invalidate borra el reporte cacheado. Se invoca tras cada mutación de
// ventas para que la siguiente lectura no espere a que venza el TTL;
// un fallo del caché solo se loguea.
func (uc *UseCase) Invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, salesReportCacheKey); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar el reporte cacheado")
	}
}
