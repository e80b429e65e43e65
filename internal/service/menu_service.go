package service

import (
	"context"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	*tableService[model.MenuItem, model.MenuItemInput]
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		tableService: newTableService[model.MenuItem, model.MenuItemInput](menuRepo, "menu item", logger),
	}
}

// Stats aggregates the current menu.
func (s *menuService) Stats(ctx context.Context) (*model.MenuStats, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := model.NewMenuStats(items)
	return &stats, nil
}

// NewPlanService creates a new subscription plan service.
func NewPlanService(planRepo repository.PlanRepository, logger zerolog.Logger) PlanService {
	return newTableService[model.SubscriptionPlan, model.SubscriptionPlanInput](planRepo, "subscription plan", logger)
}

// NewSubscriberService creates a new subscriber service.
func NewSubscriberService(subscriberRepo repository.SubscriberRepository, logger zerolog.Logger) SubscriberService {
	return newTableService[model.Subscriber, model.SubscriberInput](subscriberRepo, "subscriber", logger)
}
