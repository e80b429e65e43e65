package model

// StatCard is one headline figure on the dashboard.
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// DailyOrders is one bar of the weekly orders chart.
type DailyOrders struct {
	Day    string `json:"day"`
	Orders int    `json:"orders"`
}

// MonthlyRevenue is one point of the revenue chart.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// Dashboard is the sample dataset behind the dashboard screen.
type Dashboard struct {
	Stats          []StatCard       `json:"stats"`
	WeeklyOrders   []DailyOrders    `json:"weekly_orders"`
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
}

// MonthlyPerformance is one month of the analytics overview.
type MonthlyPerformance struct {
	Month     string  `json:"month"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
	Customers int     `json:"customers"`
}

// CategoryShare is one slice of the category pie chart.
type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SubscriptionTypeCount is one bar of the subscription mix chart.
type SubscriptionTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Analytics is the sample dataset behind the analytics screen.
type Analytics struct {
	Monthly       []MonthlyPerformance    `json:"monthly"`
	Categories    []CategoryShare         `json:"categories"`
	Subscriptions []SubscriptionTypeCount `json:"subscriptions"`
}

// AnalyticsSummary adds derived totals to the analytics dataset.
type AnalyticsSummary struct {
	Analytics
	TotalOrders        int     `json:"total_orders"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalSubscriptions int     `json:"total_subscriptions"`
}

// Summarise computes the totals over the sample dataset.
func (a Analytics) Summarise() AnalyticsSummary {
	summary := AnalyticsSummary{Analytics: a}
	for _, m := range a.Monthly {
		summary.TotalOrders += m.Orders
		summary.TotalRevenue += m.Revenue
	}
	for _, s := range a.Subscriptions {
		summary.TotalSubscriptions += s.Count
	}
	return summary
}
