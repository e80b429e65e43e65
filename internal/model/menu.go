package model

import "time"

// MenuItem represents a dish offered by the partner kitchen.
type MenuItem struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	Available   bool      `json:"available" db:"available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MenuItemInput is the write payload for creating or updating a menu item.
// Price accepts either a JSON number or a numeric string.
type MenuItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       Numeric `json:"price"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available,omitempty"`
}

// IsAvailable returns the availability flag, defaulting to true as the
// menu form does.
func (in MenuItemInput) IsAvailable() bool {
	if in.Available == nil {
		return true
	}
	return *in.Available
}

// MenuStats holds the counters shown above the menu list.
type MenuStats struct {
	Total       int            `json:"total"`
	Available   int            `json:"available"`
	Unavailable int            `json:"unavailable"`
	ByCategory  map[string]int `json:"by_category"`
}

// NewMenuStats aggregates availability and category counts.
func NewMenuStats(items []MenuItem) MenuStats {
	stats := MenuStats{
		Total:      len(items),
		ByCategory: make(map[string]int),
	}
	for _, item := range items {
		if item.Available {
			stats.Available++
		} else {
			stats.Unavailable++
		}
		stats.ByCategory[item.Category]++
	}
	return stats
}
