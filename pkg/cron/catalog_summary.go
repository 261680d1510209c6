package cron

import (
	"github.com/robfig/cron/v3"

	"inmosalta_backend/internal/catalog"
	"inmosalta_backend/internal/model"
	"inmosalta_backend/pkg/logger"
)

// InitCatalogSummaryCron schedules the weekly catalog summary: every
// Sunday evening the collections are re-read and the aggregate figures
// logged. The job never caches; it sees whatever the slots hold at run
// time.
func InitCatalogSummaryCron(
	properties *catalog.PropertyCollection,
	clients *catalog.ClientCollection,
) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc("0 20 * * 0", func() {
		logCatalogSummary(properties, clients)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

func logCatalogSummary(
	properties *catalog.PropertyCollection,
	clients *catalog.ClientCollection,
) {
	props, err := properties.LoadAll()
	if err != nil {
		logger.Log.WithError(err).Error("catalog summary: could not load properties")
		return
	}
	contacts, err := clients.LoadAll()
	if err != nil {
		logger.Log.WithError(err).Error("catalog summary: could not load clients")
		return
	}

	catalogStats := model.ComputeCatalogStats(props)
	clientStats := model.ComputeClientStats(contacts)

	logger.Log.WithField("properties", catalogStats.Total).
		WithField("total_value", catalogStats.TotalValue).
		WithField("average_price", catalogStats.AveragePrice).
		WithField("clients", clientStats.Total).
		Info("weekly catalog summary")
}
