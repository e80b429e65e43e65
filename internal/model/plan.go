package model

import "time"

// SubscriptionPlan represents a tiffin subscription offering.
// ActiveSubscribers and Revenue are maintained by the store and are never
// written through the API.
type SubscriptionPlan struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Duration          string    `json:"duration" db:"duration"`
	MealsPerDay       int       `json:"meals_per_day" db:"meals_per_day"`
	Price             float64   `json:"price" db:"price"`
	ActiveSubscribers int       `json:"active_subscribers" db:"active_subscribers"`
	Revenue           float64   `json:"revenue" db:"revenue"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// SubscriptionPlanInput is the write payload for a subscription plan.
type SubscriptionPlanInput struct {
	Name        string  `json:"name"`
	Duration    string  `json:"duration"`
	MealsPerDay Numeric `json:"meals_per_day"`
	Price       Numeric `json:"price"`
}
