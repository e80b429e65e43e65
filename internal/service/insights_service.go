package service

import (
	"context"

	"github.com/tanishkajain081/dabite-restaurant/internal/fixtures"
	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/rs/zerolog"
)

// insightsService implements InsightsService over the fixture catalog.
type insightsService struct {
	catalog fixtures.Catalog
	logger  zerolog.Logger
}

// NewInsightsService creates a new insights service.
func NewInsightsService(catalog fixtures.Catalog, logger zerolog.Logger) InsightsService {
	return &insightsService{
		catalog: catalog,
		logger:  logger.With().Str("service", "insights").Logger(),
	}
}

func (s *insightsService) Dashboard(_ context.Context) model.Dashboard {
	return s.catalog.Dashboard()
}

// Orders returns all orders in board order (pending, preparing, delivered),
// or a single column when status is set.
func (s *insightsService) Orders(_ context.Context, status string) (*model.OrdersResponse, error) {
	board := s.catalog.Orders()
	resp := &model.OrdersResponse{
		Status: status,
		Counts: board.Counts(),
		Orders: []model.Order{},
	}

	if status != "" {
		if !model.ValidOrderStatus(status) {
			s.logger.Debug().Str("status", status).Msg("unknown order status")
			return nil, model.ErrInvalidOrderStatus
		}
		resp.Orders = append(resp.Orders, board.ByStatus(status)...)
		return resp, nil
	}

	for _, st := range model.OrderStatuses {
		resp.Orders = append(resp.Orders, board.ByStatus(st)...)
	}
	return resp, nil
}

func (s *insightsService) Analytics(_ context.Context) model.AnalyticsSummary {
	return s.catalog.Analytics().Summarise()
}
