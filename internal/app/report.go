package app

import (
	"context"

	"github.com/escolarhq/eventos-admin/internal/adapters/api"
	"github.com/escolarhq/eventos-admin/internal/domain/report"
	"github.com/escolarhq/eventos-admin/pkg/logger"
)

// ReportController assembles the chart datasets: event counts by type and
// by month, and the aggregate user totals for the pie and doughnut charts.
type ReportController struct {
	client *api.Client
	log    logger.Logger
}

// NewReportController creates a report controller over the given API client.
func NewReportController(client *api.Client) *ReportController {
	return &ReportController{
		client: client,
		log:    logger.Named("report"),
	}
}

// EventCharts fetches the event list and aggregates it per type and per
// month. Events with unparseable dates are skipped in the monthly counts.
func (c *ReportController) EventCharts(ctx context.Context) (byType, byMonth report.Dataset, err error) {
	events, err := c.client.ListEvents(ctx)
	if err != nil {
		c.log.Error(ctx, "list events for report failed", logger.Error(err))
		return report.Dataset{}, report.Dataset{}, err
	}
	return report.CountByType(events), report.CountByMonth(events), nil
}

// UserChart fetches the aggregate role counts and lays them out as one
// dataset.
func (c *ReportController) UserChart(ctx context.Context) (report.Dataset, error) {
	totals, err := c.client.UserTotals(ctx)
	if err != nil {
		c.log.Error(ctx, "fetch user totals failed", logger.Error(err))
		return report.Dataset{}, err
	}
	return report.UserDataset(totals), nil
}
