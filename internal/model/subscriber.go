package model

import "time"

// Delivery statuses seen on subscriber rows. The column is free text; these
// are the values the dashboard renders with dedicated badges.
const (
	DeliveryStatusActive = "Active"
	DeliveryStatusPaused = "Paused"
)

// Subscriber represents a customer enrolled in a subscription plan.
type Subscriber struct {
	ID             int64     `json:"id" db:"id"`
	CustomerName   string    `json:"customer_name" db:"customer_name"`
	PlanType       string    `json:"plan_type" db:"plan_type"`
	StartDate      string    `json:"start_date" db:"start_date"`
	EndDate        string    `json:"end_date" db:"end_date"`
	DeliveryStatus string    `json:"delivery_status" db:"delivery_status"`
	Customization  string    `json:"customization" db:"customization"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// SubscriberInput is the write payload for a subscriber.
type SubscriberInput struct {
	CustomerName   string `json:"customer_name"`
	PlanType       string `json:"plan_type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	DeliveryStatus string `json:"delivery_status"`
	Customization  string `json:"customization"`
}
