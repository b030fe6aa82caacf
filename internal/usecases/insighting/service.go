package insighting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/aggregating"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/fetching"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/reporting"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/metrics"
)

type Config struct {
	Location    *time.Location
	RecentLimit int
}

// Service implementa Insighter sobre o fetcher e o agregador
type Service struct {
	fetcher fetching.VoteFetcher
	cfg     Config
}

// NewService cria uma nova instância do serviço de insights
func NewService(fetcher fetching.VoteFetcher, cfg Config) Insighter {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = 10
	}
	return &Service{
		fetcher: fetcher,
		cfg:     cfg,
	}
}

func (s *Service) CompanyAnalytics(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*AnalyticsResponse, error) {
	if err := s.validate(rng); err != nil {
		return nil, err
	}

	bundle, err := s.fetcher.FetchVotesForCompany(ctx, session, companyID, rng)
	if err != nil {
		return nil, err
	}

	if bundle.Lookups != nil && len(bundle.Lookups.Companies) > 0 {
		if _, ok := bundle.Lookups.Company(companyID); !ok {
			return nil, domain.ErrCompanyNotFound
		}
	}

	analytics := s.aggregate(ctx, bundle, companyID, rng)

	return &AnalyticsResponse{
		CompanyName: bundle.Lookups.CompanyName(companyID),
		StartDate:   rng.StartDate(),
		EndDate:     rng.EndDate(),
		Analytics:   analytics,
	}, nil
}

func (s *Service) AllCompaniesAnalytics(ctx context.Context, session *domain.SessionContext, rng domain.DateRange) (*AnalyticsResponse, error) {
	if err := s.validate(rng); err != nil {
		return nil, err
	}

	bundle, err := s.fetcher.FetchVotesForAllCompanies(ctx, session, rng)
	if err != nil {
		return nil, err
	}

	analytics := s.aggregate(ctx, bundle, "", rng)

	if len(bundle.FailedCompanies) > 0 {
		logrus.WithFields(logrus.Fields{
			"failed_companies": bundle.FailedCompanies,
		}).Warn("insights: agregação de todas as empresas com falhas parciais")
	}

	return &AnalyticsResponse{
		StartDate:       rng.StartDate(),
		EndDate:         rng.EndDate(),
		Analytics:       analytics,
		FailedCompanies: bundle.FailedCompanies,
	}, nil
}

func (s *Service) CompanyCharts(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*ChartsResponse, error) {
	if err := s.validate(rng); err != nil {
		return nil, err
	}

	bundle, err := s.fetcher.FetchVotesForCompany(ctx, session, companyID, rng)
	if err != nil {
		return nil, err
	}

	analytics := s.aggregate(ctx, bundle, companyID, rng)

	return &ChartsResponse{
		StartDate: rng.StartDate(),
		EndDate:   rng.EndDate(),
		Charts: reporting.Charts(analytics, bundle.Lookups, reporting.PresentOptions{
			RecentLimit: s.cfg.RecentLimit,
			Location:    s.cfg.Location,
		}),
	}, nil
}

func (s *Service) RefreshLookups(ctx context.Context, session *domain.SessionContext) (*domain.Lookups, error) {
	lookups, err := s.fetcher.RefreshLookups(ctx, session)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("insights: falha ao recarregar lookups")
		return nil, err
	}
	return lookups, nil
}

func (s *Service) validate(rng domain.DateRange) error {
	if rng.Start.IsZero() || rng.End.IsZero() || rng.Start.After(rng.End) {
		return domain.ErrInvalidRange
	}
	return nil
}

func (s *Service) aggregate(ctx context.Context, bundle *fetching.VoteBundle, companyID string, rng domain.DateRange) domain.Analytics {
	analytics := aggregating.Aggregate(bundle.Votes, bundle.Lookups, aggregating.Options{
		CompanyID: companyID,
		Range:     &rng,
		Location:  s.cfg.Location,
	})

	metrics.AggregatedVotes.Add(float64(analytics.TotalVotes))

	log.ForContext(ctx).WithFields(log.Fields{
		"company_id": companyID,
		"total":      analytics.TotalVotes,
		"skipped":    analytics.Skipped,
		"alerts":     len(analytics.Alerts),
	}).Debug("insights: votos agregados")

	return analytics
}
