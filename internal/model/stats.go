package model

// CatalogStats are the aggregate figures the dashboard derives from the
// in-memory property collection. They are recomputed on every request;
// the source collection can change between calls within one session, so
// nothing here is ever cached.
type CatalogStats struct {
	Total        int                    `json:"total"`
	TotalValue   float64                `json:"total_value"`
	AveragePrice float64                `json:"average_price"`
	ByType       map[PropertyType]int   `json:"by_type"`
	ByStatus     map[PropertyStatus]int `json:"by_status"`
}

// ClientStats summarizes the CRM collection for the dashboard.
type ClientStats struct {
	Total    int                  `json:"total"`
	ByStatus map[ClientStatus]int `json:"by_status"`
}

// MonthlySales is one row of the reports view. Figures come from an
// injectable source, not from the catalog itself.
type MonthlySales struct {
	Month   string  `json:"month"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// ComputeCatalogStats is a pure function over a snapshot of the
// property collection.
func ComputeCatalogStats(properties []Property) CatalogStats {
	stats := CatalogStats{
		Total:    len(properties),
		ByType:   make(map[PropertyType]int),
		ByStatus: make(map[PropertyStatus]int),
	}
	for _, p := range properties {
		stats.TotalValue += p.Price
		stats.ByType[p.Type]++
		stats.ByStatus[p.Status]++
	}
	if stats.Total > 0 {
		stats.AveragePrice = stats.TotalValue / float64(stats.Total)
	}
	return stats
}

// ComputeClientStats is a pure function over a snapshot of the client
// collection.
func ComputeClientStats(clients []Client) ClientStats {
	stats := ClientStats{
		Total:    len(clients),
		ByStatus: make(map[ClientStatus]int),
	}
	for _, c := range clients {
		stats.ByStatus[c.Status]++
	}
	return stats
}
