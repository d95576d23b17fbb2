package dto

// MarketplaceStatsResponse represents the admin dashboard overview
type MarketplaceStatsResponse struct {
	Users struct {
		Total    int64 `json:"total"`
		Creators int64 `json:"creators"`
	} `json:"users"`

	Services struct {
		Total    int64            `json:"total"`
		ByType   map[string]int64 `json:"byType"`
		ByStatus map[string]int64 `json:"byStatus"`
	} `json:"services"`

	Purchases struct {
		Total        int64   `json:"total"`
		Completed    int64   `json:"completed"`
		GrossRevenue float64 `json:"grossRevenue"`
	} `json:"purchases"`

	Reviews struct {
		Total         int64    `json:"total"`
		AverageRating *float64 `json:"averageRating"`
	} `json:"reviews"`
}

// ServiceAnalyticsResponse represents a creator's per-service dashboard
type ServiceAnalyticsResponse struct {
	ServiceID string `json:"serviceId"`

	Purchases struct {
		Total        int64   `json:"total"`
		Completed    int64   `json:"completed"`
		GrossRevenue float64 `json:"grossRevenue"`
	} `json:"purchases"`

	Reviews struct {
		Total         int64    `json:"total"`
		AverageRating *float64 `json:"averageRating"`
	} `json:"reviews"`
}
