package fetching

import (
	"context"
	"time"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

// LookupStore é o segundo nível do cache de lookups (Redis)
type LookupStore interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// VoteFetcher é o contrato usado pelos serviços de análise, monitores e relatórios
type VoteFetcher interface {
	FetchVotesForCompany(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*VoteBundle, error)
	FetchVotesForAllCompanies(ctx context.Context, session *domain.SessionContext, rng domain.DateRange) (*VoteBundle, error)
	FetchAnalyticsSnapshot(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*domain.AnalyticsSnapshot, error)
	RefreshLookups(ctx context.Context, session *domain.SessionContext) (*domain.Lookups, error)
	Lookups() *domain.Lookups
}

// VoteBundle é o resultado bruto de uma busca, pronto para o agregador
type VoteBundle struct {
	CompanyID       string
	Range           domain.DateRange
	Votes           []domain.Vote
	Lookups         *domain.Lookups
	FailedCompanies []string
}
