package monitoring

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/livefeed"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/fetching"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/metrics"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/utils"
)

var ErrTooManyViews = errors.New("monitor: limite de visões abertas atingido")

type RegistryConfig struct {
	MaxViews         int
	// MaxViewsPerOwner limita as visões de um mesmo usuário; zero desliga
	MaxViewsPerOwner int
	PollInterval     time.Duration
	FetchTimeout     time.Duration
	IdleTimeout      time.Duration
	ExpiryCheck      time.Duration
	Location         *time.Location
}

// OpenRequest descreve a visão pedida pelo painel
type OpenRequest struct {
	CompanyID string
	RangeKind domain.QuickRangeKind
	Range     *domain.DateRange
}

// Registry guarda as visões abertas pela API, indexadas por id
type Registry struct {
	mu      sync.RWMutex
	views   map[string]*View
	fetcher fetching.VoteFetcher
	hub     livefeed.Hub
	poller  Poller
	cfg     RegistryConfig
	newID   func() (string, error)
}

func NewRegistry(fetcher fetching.VoteFetcher, hub livefeed.Hub, poller Poller, cfg RegistryConfig) *Registry {
	return &Registry{
		views:   make(map[string]*View),
		fetcher: fetcher,
		hub:     hub,
		poller:  poller,
		cfg:     cfg,
		newID:   utils.GenerateID,
	}
}

func (r *Registry) Open(session *domain.SessionContext, req OpenRequest) (*View, error) {
	var owner int
	if session != nil {
		owner = session.UserID
	}

	r.mu.RLock()
	err := r.checkLimits(owner)
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	id, err := r.newID()
	if err != nil {
		return nil, errors.Wrap(err, "monitor: falha ao gerar id")
	}

	// a assinatura do feed pode demorar; o mapa fica livre enquanto isso
	view, err := OpenView(id, session, req.CompanyID, r.fetcher, r.hub, r.poller, ViewConfig{
		RangeKind:    req.RangeKind,
		Range:        req.Range,
		Location:     r.cfg.Location,
		PollInterval: r.cfg.PollInterval,
		FetchTimeout: r.cfg.FetchTimeout,
		IdleTimeout:  r.cfg.IdleTimeout,
		ExpiryCheck:  r.cfg.ExpiryCheck,
	})
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if err := r.checkLimits(owner); err != nil {
		r.mu.Unlock()
		view.Close()
		return nil, err
	}
	r.views[id] = view
	metrics.ActiveMonitors.Set(float64(len(r.views)))
	r.mu.Unlock()

	go r.reap(id, view)

	return view, nil
}

// checkLimits deve ser chamado com r.mu travado
func (r *Registry) checkLimits(owner int) error {
	if r.cfg.MaxViews > 0 && len(r.views) >= r.cfg.MaxViews {
		return ErrTooManyViews
	}
	if r.cfg.MaxViewsPerOwner <= 0 {
		return nil
	}

	count := 0
	for _, view := range r.views {
		if view.OwnerID() == owner {
			count++
		}
	}
	if count >= r.cfg.MaxViewsPerOwner {
		return ErrTooManyViews
	}
	return nil
}

// reap retira do mapa a visão que encerrou sozinha (ociosa ou sessão expirada)
func (r *Registry) reap(id string, view *View) {
	<-view.Done()

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.views[id]; ok && current == view {
		delete(r.views, id)
		metrics.ActiveMonitors.Set(float64(len(r.views)))
	}
}

// Get devolve a visão e renova seu prazo de ociosidade
func (r *Registry) Get(id string) (*View, error) {
	r.mu.RLock()
	view, ok := r.views[id]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrMonitorNotFound
	}

	select {
	case <-view.Done():
		return nil, domain.ErrMonitorNotFound
	default:
	}

	view.Touch()
	return view, nil
}

func (r *Registry) Close(id string) error {
	r.mu.Lock()
	view, ok := r.views[id]
	delete(r.views, id)
	metrics.ActiveMonitors.Set(float64(len(r.views)))
	r.mu.Unlock()

	if !ok {
		return domain.ErrMonitorNotFound
	}

	view.Close()
	return nil
}

// CloseAll encerra todas as visões; usado no desligamento do servidor
func (r *Registry) CloseAll() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*View)
	metrics.ActiveMonitors.Set(0)
	r.mu.Unlock()

	for _, view := range views {
		view.Close()
	}

	log.L.WithField("count", len(views)).Info("monitor: todas as visões encerradas")
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}
