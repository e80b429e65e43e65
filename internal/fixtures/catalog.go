package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/rs/zerolog"
)

type catalog struct {
	dashboard model.Dashboard
	orders    model.OrdersBoard
	analytics model.Analytics
}

// NewCatalog loads the three datasets concurrently and decodes them. Any
// load or decode failure aborts startup.
func NewCatalog(ctx context.Context, loader Loader, logger zerolog.Logger) (Catalog, error) {
	logger = logger.With().Str("component", "fixture-catalog").Logger()

	c := &catalog{}
	targets := []struct {
		name string
		out  interface{}
	}{
		{DashboardFile, &c.dashboard},
		{OrdersFile, &c.orders},
		{AnalyticsFile, &c.analytics},
	}

	type loadResult struct {
		index int
		err   error
	}

	resultChan := make(chan loadResult, len(targets))
	var wg sync.WaitGroup

	for i, target := range targets {
		wg.Add(1)
		go func(index int, name string, out interface{}) {
			defer wg.Done()

			data, err := loader.Load(ctx, name)
			if err == nil {
				if jerr := json.Unmarshal(data, out); jerr != nil {
					err = fmt.Errorf("failed to decode %s: %w", name, jerr)
				}
			}
			resultChan <- loadResult{index: index, err: err}
		}(i, target.name, target.out)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(targets))
	for result := range resultChan {
		results[result.index] = result
	}

	for i, result := range results {
		if result.err != nil {
			logger.Error().Err(result.err).Str("file", targets[i].name).Msg("failed to load fixture")
			return nil, fmt.Errorf("failed to load fixture %s: %w", targets[i].name, result.err)
		}
	}

	c.orders = stampStatuses(c.orders)

	logger.Info().
		Int("weekly_points", len(c.dashboard.WeeklyOrders)).
		Int("orders", len(c.orders.Pending)+len(c.orders.Preparing)+len(c.orders.Delivered)).
		Int("analytics_months", len(c.analytics.Monthly)).
		Msg("fixtures loaded")

	return c, nil
}

// stampStatuses sets each order's status from the column it sits in.
func stampStatuses(board model.OrdersBoard) model.OrdersBoard {
	for _, status := range model.OrderStatuses {
		for i := range board.ByStatus(status) {
			board.ByStatus(status)[i].Status = status
		}
	}
	return board
}

func (c *catalog) Dashboard() model.Dashboard {
	return c.dashboard
}

func (c *catalog) Orders() model.OrdersBoard {
	return c.orders
}

func (c *catalog) Analytics() model.Analytics {
	return c.analytics
}
