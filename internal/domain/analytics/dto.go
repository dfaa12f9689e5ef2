package analytics

import "tendorai/internal/domain/lead"

// SummaryResponse is the dashboard overview, available at every tier
type SummaryResponse struct {
	TotalLeads     int64                 `json:"total_leads"`
	Counts         map[lead.Status]int64 `json:"counts"`
	ConversionRate float64               `json:"conversion_rate"`
	ProfileViews   int64                 `json:"profile_views"`
	Rating         float64               `json:"rating"`
	TotalReviews   int                   `json:"total_reviews"`
}

// AdvancedResponse is the paid-tier analytics payload
type AdvancedResponse struct {
	MonthlyLeads  []lead.MonthlyCount `json:"monthly_leads"`
	WonValueTotal float64             `json:"won_value_total"`
	QuoteRate     float64             `json:"quote_rate"`
	WinRate       float64             `json:"win_rate"`
}
