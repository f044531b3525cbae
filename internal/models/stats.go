package models

// DashboardStats is the aggregate view served to the admin panel.
type DashboardStats struct {
	Financing  FinancingStats   `json:"financings"`
	Insurance  InsuranceStats   `json:"insurances"`
	Properties PropertyCounters `json:"properties"`
}

type FinancingStats struct {
	Total      int     `json:"total"`
	Today      int     `json:"today"`
	TotalValue float64 `json:"total_value"`
}

type InsuranceStats struct {
	Total int `json:"total"`
	Today int `json:"today"`
}

type PropertyCounters struct {
	Total        int     `json:"total"`
	TotalValue   float64 `json:"total_value"`
	AveragePrice float64 `json:"average_price"`
}
