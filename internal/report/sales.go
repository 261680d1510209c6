// Package report feeds the reports view. The original dashboard showed
// made-up monthly sales figures; here the source of those figures is
// injectable so the production app can keep its simulated numbers while
// tests supply deterministic ones.
package report

import (
	"math/rand"

	"inmosalta_backend/internal/model"
)

var months = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// SalesSource supplies the monthly sales rows for a year.
type SalesSource interface {
	MonthlySales(year int) []model.MonthlySales
}

// SimulatedSales generates plausible-looking random figures, standing
// in for a reporting backend that does not exist.
type SimulatedSales struct {
	rng *rand.Rand
}

func NewSimulatedSales(seed int64) *SimulatedSales {
	return &SimulatedSales{rng: rand.New(rand.NewSource(seed))}
}

func (s *SimulatedSales) MonthlySales(year int) []model.MonthlySales {
	rows := make([]model.MonthlySales, 0, len(months))
	for _, month := range months {
		sales := s.rng.Intn(12) + 1
		rows = append(rows, model.MonthlySales{
			Month:   month,
			Sales:   sales,
			Revenue: float64(sales) * (150000 + float64(s.rng.Intn(200000))),
		})
	}
	return rows
}

// FixedSales returns the same rows every call; used by tests.
type FixedSales struct {
	Rows []model.MonthlySales
}

func (f *FixedSales) MonthlySales(int) []model.MonthlySales {
	return f.Rows
}
