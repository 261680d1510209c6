package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inmosalta_backend/internal/model"
)

func TestSimulatedSalesShape(t *testing.T) {
	rows := NewSimulatedSales(1).MonthlySales(2026)

	assert.Len(t, rows, 12)
	assert.Equal(t, "Enero", rows[0].Month)
	assert.Equal(t, "Diciembre", rows[11].Month)
	for _, row := range rows {
		assert.GreaterOrEqual(t, row.Sales, 1)
		assert.Greater(t, row.Revenue, float64(0))
	}
}

func TestSimulatedSalesSameSeedSameRows(t *testing.T) {
	a := NewSimulatedSales(42).MonthlySales(2026)
	b := NewSimulatedSales(42).MonthlySales(2026)
	assert.Equal(t, a, b)
}

func TestFixedSalesReturnsRowsVerbatim(t *testing.T) {
	rows := []model.MonthlySales{
		{Month: "Enero", Sales: 3, Revenue: 450000},
	}
	src := &FixedSales{Rows: rows}

	assert.Equal(t, rows, src.MonthlySales(2026))
	assert.Equal(t, rows, src.MonthlySales(1999))
}
