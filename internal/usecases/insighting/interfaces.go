package insighting

import (
	"context"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/reporting"
)

// Insighter expõe as consultas do painel sobre os votos do VoteTrack
type Insighter interface {
	// CompanyAnalytics agrega os votos de uma empresa no intervalo
	CompanyAnalytics(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*AnalyticsResponse, error)

	// AllCompaniesAnalytics agrega todas as empresas; falhas parciais ficam em FailedCompanies
	AllCompaniesAnalytics(ctx context.Context, session *domain.SessionContext, rng domain.DateRange) (*AnalyticsResponse, error)

	// CompanyCharts devolve as projeções de gráfico já filtradas pelos botões da empresa
	CompanyCharts(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*ChartsResponse, error)

	RefreshLookups(ctx context.Context, session *domain.SessionContext) (*domain.Lookups, error)
}

type AnalyticsResponse struct {
	CompanyName     string           `json:"company_name,omitempty"`
	StartDate       string           `json:"start_date"`
	EndDate         string           `json:"end_date"`
	Analytics       domain.Analytics `json:"analytics"`
	FailedCompanies []string         `json:"failed_companies,omitempty"`
}

type ChartsResponse struct {
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Charts    reporting.ChartSet `json:"charts"`
}
