package controller

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"inmosalta_backend/internal/catalog"
	"inmosalta_backend/internal/model"
	"inmosalta_backend/internal/report"
)

// DashboardStats is the admin dashboard payload. Every figure is
// derived fresh from the collections on each request.
type DashboardStats struct {
	Catalog       model.CatalogStats `json:"catalog"`
	Clients       model.ClientStats  `json:"clients"`
	TopProperties []TopProperty      `json:"top_properties"`
	RecentListed  []TopProperty      `json:"recent_listed"`
}

type TopProperty struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Location   string  `json:"location"`
	Type       string  `json:"type"`
	CoverImage string  `json:"cover_image"`
}

type StatsController struct {
	properties *catalog.PropertyCollection
	clients    *catalog.ClientCollection
	sales      report.SalesSource
}

func NewStatsController(
	properties *catalog.PropertyCollection,
	clients *catalog.ClientCollection,
	sales report.SalesSource,
) *StatsController {
	return &StatsController{properties: properties, clients: clients, sales: sales}
}

// GetDashboardStats aggregates the catalog and CRM collections.
func (sc *StatsController) GetDashboardStats(c *fiber.Ctx) error {
	properties, err := sc.properties.LoadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}
	clients, err := sc.clients.LoadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch clients",
		})
	}

	stats := DashboardStats{
		Catalog:       model.ComputeCatalogStats(properties),
		Clients:       model.ComputeClientStats(clients),
		TopProperties: topByPrice(properties, 5),
		RecentListed:  recentlyCreated(properties, 5),
	}
	return c.JSON(stats)
}

// GetSalesReport serves the reports view: monthly figures from the
// injected source plus the by-type distribution of the live catalog.
func (sc *StatsController) GetSalesReport(c *fiber.Ctx) error {
	year := coerceInt(c.Query("year"))
	if year == 0 {
		year = time.Now().Year()
	}

	properties, err := sc.properties.LoadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}
	stats := model.ComputeCatalogStats(properties)

	return c.JSON(fiber.Map{
		"year":          year,
		"monthly_sales": sc.sales.MonthlySales(year),
		"by_type":       stats.ByType,
		"by_status":     stats.ByStatus,
	})
}

func topByPrice(properties []model.Property, limit int) []TopProperty {
	sorted := make([]model.Property, len(properties))
	copy(sorted, properties)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price > sorted[j].Price
	})
	return summarize(sorted, limit)
}

func recentlyCreated(properties []model.Property, limit int) []TopProperty {
	sorted := make([]model.Property, len(properties))
	copy(sorted, properties)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return summarize(sorted, limit)
}

func summarize(properties []model.Property, limit int) []TopProperty {
	if len(properties) > limit {
		properties = properties[:limit]
	}
	out := make([]TopProperty, 0, len(properties))
	for _, p := range properties {
		cover := ""
		if len(p.Images) > 0 {
			cover = p.Images[0]
		}
		out = append(out, TopProperty{
			ID:         p.ID,
			Title:      p.Title,
			Price:      p.Price,
			Location:   p.Location,
			Type:       string(p.Type),
			CoverImage: cover,
		})
	}
	return out
}
