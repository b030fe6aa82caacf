// Package fetching busca votos e lookups no backend do VoteTrack
package fetching

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/cache"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const lookupsFlightKey = "lookups"

type Config struct {
	MaxConcurrent int
	LookupTTL     time.Duration
	CacheKey      string
}

type Fetcher struct {
	integrator votetrack.VoteTrackIntegrator
	store      LookupStore
	cfg        Config
	lookups    atomic.Pointer[domain.Lookups]
	group      singleflight.Group
	now        func() time.Time
}

// New cria o fetcher; store pode ser nil quando não há Redis configurado
func New(integrator votetrack.VoteTrackIntegrator, store LookupStore, cfg Config) *Fetcher {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	if cfg.CacheKey == "" {
		cfg.CacheKey = "satisfaction:lookups"
	}
	return &Fetcher{
		integrator: integrator,
		store:      store,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Lookups retorna o último retrato conhecido, ou nil se nunca foi carregado
func (f *Fetcher) Lookups() *domain.Lookups {
	return f.lookups.Load()
}

func (f *Fetcher) FetchVotesForCompany(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*VoteBundle, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"company_id": companyID,
		"start_date": rng.StartDate(),
		"end_date":   rng.EndDate(),
	})

	lookups, err := f.ensureLookups(ctx, session)
	if err != nil {
		if errors.Is(err, domain.ErrAuth) {
			return nil, err
		}
		logger.WithError(err).Warn("fetcher: lookups indisponíveis, votos serão agrupados como desconhecidos")
		lookups = domain.NewLookups(nil, nil, time.Time{})
	}

	votes, err := f.integrator.GetVotes(ctx, session, companyID, rng)
	if err != nil {
		logger.WithError(err).Error("fetcher: erro ao buscar votos da empresa")
		return nil, err
	}

	logger.WithField("votes", len(votes)).Debug("fetcher: votos recebidos")

	return &VoteBundle{
		CompanyID: companyID,
		Range:     rng,
		Votes:     votes,
		Lookups:   lookups,
	}, nil
}

// FetchVotesForAllCompanies busca as empresas em paralelo, limitado por MaxConcurrent.
// Falhas individuais não interrompem a junção; ficam em FailedCompanies.
func (f *Fetcher) FetchVotesForAllCompanies(ctx context.Context, session *domain.SessionContext, rng domain.DateRange) (*VoteBundle, error) {
	logger := log.ForContext(ctx)

	lookups, err := f.ensureLookups(ctx, session)
	if err != nil {
		logger.WithError(err).Error("fetcher: não foi possível obter a lista de empresas")
		return nil, err
	}

	ids := lookups.CompanyIDs()
	results := make([][]domain.Vote, len(ids))
	errs := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(f.cfg.MaxConcurrent)
	for i, id := range ids {
		g.Go(func() error {
			results[i], errs[i] = f.integrator.GetVotes(ctx, session, id, rng)
			return nil
		})
	}
	_ = g.Wait()

	bundle := &VoteBundle{
		Range:           rng,
		Votes:           []domain.Vote{},
		Lookups:         lookups,
		FailedCompanies: []string{},
	}

	var authErr error
	for i, id := range ids {
		if errs[i] != nil {
			metrics.FanOutFailures.Inc()
			logger.WithFields(log.Fields{
				"company_id": id,
				"error":      errs[i].Error(),
			}).Warn("fetcher: falha ao buscar votos de uma empresa, seguindo com as demais")

			bundle.FailedCompanies = append(bundle.FailedCompanies, id)
			if errors.Is(errs[i], domain.ErrAuth) {
				authErr = errs[i]
			}
			continue
		}
		bundle.Votes = append(bundle.Votes, results[i]...)
	}

	if authErr != nil {
		return nil, authErr
	}

	logger.WithFields(log.Fields{
		"companies": len(ids),
		"failed":    len(bundle.FailedCompanies),
		"votes":     len(bundle.Votes),
	}).Info("fetcher: busca de todas as empresas concluída")

	return bundle, nil
}

func (f *Fetcher) FetchAnalyticsSnapshot(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*domain.AnalyticsSnapshot, error) {
	return f.integrator.GetAnalyticsSnapshot(ctx, session, companyID, rng)
}

// RefreshLookups recarrega empresas e serviços. Chamadas concorrentes compartilham a mesma busca.
func (f *Fetcher) RefreshLookups(ctx context.Context, session *domain.SessionContext) (*domain.Lookups, error) {
	v, err, shared := f.group.Do(lookupsFlightKey, func() (any, error) {
		flightCtx := context.WithoutCancel(ctx)

		var companies []domain.Company
		var services []domain.ServiceInfo

		g, gctx := errgroup.WithContext(flightCtx)
		g.Go(func() error {
			var err error
			companies, err = f.integrator.GetCompanies(gctx, session)
			return err
		})
		g.Go(func() error {
			var err error
			services, err = f.integrator.GetServices(gctx, session)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		lookups := domain.NewLookups(companies, services, f.now())
		f.lookups.Store(lookups)
		metrics.LookupRefreshes.WithLabelValues("backend").Inc()

		if f.store != nil {
			if err := f.store.Set(flightCtx, f.cfg.CacheKey, lookups, f.cfg.LookupTTL); err != nil {
				log.L.WithError(err).Warn("fetcher: falha ao gravar lookups no cache")
			}
		}

		log.L.WithFields(log.Fields{
			"companies": len(companies),
			"services":  len(services),
		}).Info("fetcher: lookups atualizados")

		return lookups, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		log.L.Debug("fetcher: atualização de lookups compartilhada")
	}

	return v.(*domain.Lookups), nil
}

func (f *Fetcher) ensureLookups(ctx context.Context, session *domain.SessionContext) (*domain.Lookups, error) {
	if current := f.lookups.Load(); current != nil && f.fresh(current) {
		return current, nil
	}

	if f.store != nil {
		var cached domain.Lookups
		err := f.store.Get(ctx, f.cfg.CacheKey, &cached)
		switch {
		case err == nil && f.fresh(&cached):
			f.lookups.Store(&cached)
			metrics.LookupRefreshes.WithLabelValues("cache").Inc()
			return &cached, nil
		case err != nil && !errors.Is(err, cache.ErrCacheMiss):
			log.ForContext(ctx).WithError(err).Warn("fetcher: falha ao ler lookups do cache")
		}
	}

	lookups, err := f.RefreshLookups(ctx, session)
	if err != nil {
		if stale := f.lookups.Load(); stale != nil && !errors.Is(err, domain.ErrAuth) {
			log.ForContext(ctx).WithError(err).Warn("fetcher: usando lookups antigos após falha na atualização")
			return stale, nil
		}
		return nil, err
	}

	return lookups, nil
}

func (f *Fetcher) fresh(l *domain.Lookups) bool {
	if f.cfg.LookupTTL <= 0 {
		return true
	}
	return f.now().Sub(l.RefreshedAt) < f.cfg.LookupTTL
}
