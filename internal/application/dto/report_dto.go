package dto

import "github.com/shopspring/decimal"

// SalesReportRow fila del reporte de ventas. La llave product__name viene
// del contrato original del endpoint y los clientes ya dependen de ella.
type SalesReportRow struct {
	ProductName string          `json:"product__name"`
	TotalSales  decimal.Decimal `json:"total_sales"`
}

// SalesReportResponse salida de GET /api/sales-report/.
type SalesReportResponse struct {
	SalesData  []SalesReportRow `json:"sales_data"`
	TotalSales decimal.Decimal  `json:"total_sales"`
}

// ImportErrorsResponse salida cuando el import CSV tuvo filas fallidas.
type ImportErrorsResponse struct {
	Errors []string `json:"errors"`
}
