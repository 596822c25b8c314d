package response

import (
	"arclean_orcamentos/internal/domain/quoting"
	"arclean_orcamentos/internal/usecase"
)

type PingResponse struct {
	Message  string `json:"message"`
	State    string `json:"state"`
	Degraded bool   `json:"degraded"`
}

type DashboardResponse struct {
	usecase.Dashboard
	Recent         []QuoteResponse `json:"recent"`
	RevenueDisplay string          `json:"revenueDisplay"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Dashboard:      d,
		Recent:         FromQuotes(d.Recent),
		RevenueDisplay: quoting.FormatCurrency(d.Revenue),
	}
}
