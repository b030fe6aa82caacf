package monitoring

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/livefeed"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/aggregating"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/fetching"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/metrics"
)

var ErrViewClosed = errors.New("monitor: visão encerrada")

// Poller agenda a atualização periódica de uma visão. stop remove o agendamento.
type Poller interface {
	Every(interval time.Duration, fn func()) (stop func(), err error)
}

type ViewConfig struct {
	// RangeKind é reavaliado a cada busca, para que "hoje" acompanhe a virada do dia.
	// Range, quando informado, tem precedência.
	RangeKind    domain.QuickRangeKind
	Range        *domain.DateRange
	Location     *time.Location
	PollInterval time.Duration
	FetchTimeout time.Duration
	// IdleTimeout encerra a visão que ninguém consultou nesse período; zero desliga
	IdleTimeout  time.Duration
	// ExpiryCheck é o intervalo das verificações de ociosidade e de sessão expirada
	ExpiryCheck  time.Duration
	Now          func() time.Time
}

// Snapshot é o estado publicado de uma visão, seguro para leitura concorrente
type Snapshot struct {
	ID             string            `json:"id"`
	OwnerID        int               `json:"owner_id"`
	CompanyID      string            `json:"company_id"`
	Range          domain.DateRange  `json:"range"`
	Analytics      *domain.Analytics `json:"analytics,omitempty"`
	Loading        bool              `json:"loading"`
	Error          string            `json:"error,omitempty"`
	Live           bool              `json:"live"`
	Sequence       uint64            `json:"sequence"`
	StaleDiscarded int               `json:"stale_discarded"`
	UpdatedAt      time.Time         `json:"updated_at"`
	// empresas que falharam na última busca da visão geral; vazio quando tudo respondeu
	FailedCompanies []string `json:"failed_companies"`
}

type commandKind int

const (
	cmdSwitchCompany commandKind = iota
	cmdRefresh
	cmdPoll
)

type command struct {
	kind      commandKind
	companyID string
	reply     chan error
}

type fetchResult struct {
	seq    uint64
	bundle *fetching.VoteBundle
	err    error
}

// View é uma visão ao vivo de uma empresa (ou de todas). Todo o estado mutável pertence
// à goroutine do loop; o restante do sistema conversa com ela por canais.
type View struct {
	id      string
	session *domain.SessionContext
	fetcher fetching.VoteFetcher
	hub     livefeed.Hub
	cfg     ViewConfig

	cmds    chan command
	results chan fetchResult
	done    chan struct{}
	stopped chan struct{}

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	snapshot  atomic.Pointer[Snapshot]
	lastSeen  atomic.Int64
}

// viewState só é tocado pela goroutine do loop
type viewState struct {
	companyID string
	rng       domain.DateRange
	seq       uint64
	inFlight  bool
	loaded    bool
	analytics domain.Analytics
	lookups   *domain.Lookups
	pending   []domain.Vote
	sub       livefeed.Subscription
	subC      <-chan livefeed.Message
	stopPoll  func()
	lastErr   error
	failed    []string
	discarded int
}

// OpenView assina o canal da empresa, agenda o polling e dispara a primeira busca.
// poller pode ser nil, assim como PollInterval zero desliga o polling.
func OpenView(id string, session *domain.SessionContext, companyID string, fetcher fetching.VoteFetcher, hub livefeed.Hub, poller Poller, cfg ViewConfig) (*View, error) {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.ExpiryCheck <= 0 {
		cfg.ExpiryCheck = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	ctx = context.WithValue(ctx, log.CorrelationIDKey, id)

	v := &View{
		id:      id,
		session: session,
		fetcher: fetcher,
		hub:     hub,
		cfg:     cfg,
		cmds:    make(chan command),
		results: make(chan fetchResult),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
	v.Touch()

	state := &viewState{companyID: companyID}
	rng, err := v.resolveRange()
	if err != nil {
		cancel()
		return nil, err
	}
	state.rng = rng
	state.analytics = domain.NewAnalytics(companyID, rangeRef(state.rng))

	v.subscribe(state)

	if poller != nil && cfg.PollInterval > 0 {
		stop, err := poller.Every(cfg.PollInterval, v.poll)
		if err != nil {
			v.unsubscribe(state)
			cancel()
			return nil, errors.Wrap(err, "monitor: falha ao agendar atualização periódica")
		}
		state.stopPoll = stop
	}

	v.fetch(state)
	v.publish(state)

	go v.loop(state)

	log.ForContext(ctx).WithFields(log.Fields{
		"monitor_id": id,
		"company_id": companyID,
		"start_date": rng.StartDate(),
		"end_date":   rng.EndDate(),
	}).Info("monitor: visão aberta")

	return v, nil
}

func (v *View) ID() string {
	return v.id
}

func (v *View) OwnerID() int {
	if v.session == nil {
		return 0
	}
	return v.session.UserID
}

// Touch registra que o painel ainda usa a visão
func (v *View) Touch() {
	v.lastSeen.Store(v.cfg.Now().UnixNano())
}

// Snapshot retorna o último estado publicado pelo loop
func (v *View) Snapshot() Snapshot {
	return *v.snapshot.Load()
}

// SwitchCompany troca a empresa observada: encerra a assinatura anterior, assina a nova e recarrega.
func (v *View) SwitchCompany(ctx context.Context, companyID string) error {
	return v.send(ctx, command{kind: cmdSwitchCompany, companyID: companyID})
}

func (v *View) Refresh(ctx context.Context) error {
	return v.send(ctx, command{kind: cmdRefresh})
}

// Close encerra a visão e aguarda o fim do loop. Pode ser chamado mais de uma vez.
func (v *View) Close() {
	v.closeOnce.Do(func() {
		close(v.done)
	})
	<-v.stopped
}

// Done é fechado quando o loop termina
func (v *View) Done() <-chan struct{} {
	return v.stopped
}

func (v *View) send(ctx context.Context, cmd command) error {
	cmd.reply = make(chan error, 1)
	select {
	case v.cmds <- cmd:
	case <-v.stopped:
		return ErrViewClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.reply:
		return err
	case <-v.stopped:
		return ErrViewClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// poll roda na goroutine do agendador; se o loop estiver ocupado o tick é descartado
func (v *View) poll() {
	select {
	case v.cmds <- command{kind: cmdPoll}:
	default:
	}
}

func (v *View) loop(state *viewState) {
	defer close(v.stopped)
	defer v.shutdown(state)

	expiry := time.NewTicker(v.cfg.ExpiryCheck)
	defer expiry.Stop()

	for {
		select {
		case <-v.done:
			return

		case <-expiry.C:
			if reason := v.expired(); reason != "" {
				log.ForContext(v.ctx).WithFields(log.Fields{
					"monitor_id": v.id,
					"reason":     reason,
				}).Info("monitor: visão encerrada automaticamente")
				return
			}
			continue

		case cmd := <-v.cmds:
			err := v.handleCommand(state, cmd)
			if cmd.reply != nil {
				cmd.reply <- err
			}

		case res := <-v.results:
			v.handleResult(state, res)

		case msg, ok := <-state.subC:
			if !ok {
				// canal de push caiu: a última visão conhecida continua valendo
				state.subC = nil
				log.ForContext(v.ctx).WithField("company_id", state.companyID).Warn("monitor: canal ao vivo desconectado, mantendo último estado")
				break
			}
			v.handleMessage(state, msg)
		}

		v.publish(state)
	}
}

// expired devolve o motivo para encerrar a visão, ou vazio se ela continua válida
func (v *View) expired() string {
	now := v.cfg.Now()
	if !v.session.Usable(now) {
		return "sessão expirada ou rejeitada"
	}
	if v.cfg.IdleTimeout > 0 && now.Sub(time.Unix(0, v.lastSeen.Load())) > v.cfg.IdleTimeout {
		return "visão ociosa"
	}
	return ""
}

func (v *View) handleCommand(state *viewState, cmd command) error {
	switch cmd.kind {
	case cmdSwitchCompany:
		if cmd.companyID == state.companyID {
			v.fetch(state)
			return nil
		}

		v.unsubscribe(state)
		state.companyID = cmd.companyID
		state.analytics = domain.NewAnalytics(cmd.companyID, rangeRef(state.rng))
		state.loaded = false
		state.lookups = nil
		state.pending = nil
		state.lastErr = nil
		state.failed = nil
		v.subscribe(state)
		v.fetch(state)

		log.ForContext(v.ctx).WithField("company_id", cmd.companyID).Info("monitor: empresa alterada")

	case cmdRefresh:
		v.fetch(state)

	case cmdPoll:
		if state.inFlight {
			return nil
		}
		v.fetch(state)
	}
	return nil
}

func (v *View) handleResult(state *viewState, res fetchResult) {
	if res.seq != state.seq {
		state.discarded++
		metrics.StaleResponses.Inc()
		log.ForContext(v.ctx).WithFields(log.Fields{
			"sequence": res.seq,
			"latest":   state.seq,
		}).Debug("monitor: " + domain.ErrStaleResponse.Error())
		return
	}

	state.inFlight = false
	if res.err != nil {
		state.lastErr = res.err
		state.pending = nil
		log.ForContext(v.ctx).WithError(res.err).Warn("monitor: falha ao atualizar visão, mantendo último estado")
		return
	}

	lookups := res.bundle.Lookups
	analytics := aggregating.Aggregate(res.bundle.Votes, lookups, aggregating.Options{
		CompanyID: state.companyID,
		Range:     rangeRef(state.rng),
		Location:  v.cfg.Location,
	})
	for _, vote := range state.pending {
		analytics = Apply(analytics, lookups, vote, v.cfg.Location)
	}

	metrics.AggregatedVotes.Add(float64(len(res.bundle.Votes)))

	state.analytics = analytics
	state.lookups = lookups
	state.pending = nil
	state.loaded = true
	state.lastErr = nil
	state.failed = append([]string(nil), res.bundle.FailedCompanies...)

	if len(state.failed) > 0 {
		log.ForContext(v.ctx).WithFields(log.Fields{
			"failed": len(state.failed),
		}).Warn("monitor: visão atualizada com empresas faltando")
	}
}

func (v *View) handleMessage(state *viewState, msg livefeed.Message) {
	if state.companyID != livefeed.AllCompanies && msg.CompanyID != state.companyID {
		return
	}

	switch msg.Kind {
	case livefeed.KindVote:
		if msg.Vote == nil {
			return
		}
		lookups := state.lookups
		if lookups == nil {
			lookups = v.fetcher.Lookups()
		}
		state.analytics = Apply(state.analytics, lookups, *msg.Vote, v.cfg.Location)
		if state.inFlight {
			state.pending = append(state.pending, *msg.Vote)
		}
		metrics.LiveUpdates.WithLabelValues(string(msg.Kind), "applied").Inc()

	case livefeed.KindSnapshot:
		if msg.Snapshot == nil || !state.loaded {
			return
		}
		if state.companyID == livefeed.AllCompanies || msg.Snapshot.Matches(state.analytics) {
			metrics.LiveUpdates.WithLabelValues(string(msg.Kind), "match").Inc()
			return
		}
		metrics.LiveUpdates.WithLabelValues(string(msg.Kind), "refetch").Inc()
		log.ForContext(v.ctx).WithFields(log.Fields{
			"company_id":    state.companyID,
			"backend_total": msg.Snapshot.TotalVotes,
			"local_total":   state.analytics.TotalVotes,
		}).Info("monitor: resumo do backend diverge da visão local, recarregando")
		if !state.inFlight {
			v.fetch(state)
		}
	}
}

// fetch dispara uma busca marcada com um novo número de sequência
func (v *View) fetch(state *viewState) {
	if rng, err := v.resolveRange(); err == nil && !sameRange(rng, state.rng) {
		state.rng = rng
		state.analytics = domain.NewAnalytics(state.companyID, rangeRef(rng))
		state.loaded = false
	}

	state.seq++
	state.inFlight = true
	seq, companyID, rng := state.seq, state.companyID, state.rng

	go func() {
		ctx, cancel := context.WithTimeout(v.ctx, v.cfg.FetchTimeout)
		defer cancel()

		var bundle *fetching.VoteBundle
		var err error
		if companyID == livefeed.AllCompanies {
			bundle, err = v.fetcher.FetchVotesForAllCompanies(ctx, v.session, rng)
		} else {
			bundle, err = v.fetcher.FetchVotesForCompany(ctx, v.session, companyID, rng)
		}
		if err == nil && bundle == nil {
			bundle = &fetching.VoteBundle{CompanyID: companyID, Range: rng}
		}

		select {
		case v.results <- fetchResult{seq: seq, bundle: bundle, err: err}:
		case <-v.stopped:
		}
	}()
}

func (v *View) subscribe(state *viewState) {
	if v.hub == nil {
		return
	}
	sub, err := v.hub.Subscribe(state.companyID)
	if err != nil {
		log.ForContext(v.ctx).WithError(err).Warn("monitor: não foi possível assinar o canal ao vivo")
		return
	}
	state.sub = sub
	state.subC = sub.C()
}

func (v *View) unsubscribe(state *viewState) {
	if state.sub == nil {
		return
	}
	state.subC = nil
	state.sub.Close()
	state.sub = nil
}

func (v *View) shutdown(state *viewState) {
	v.cancel()
	v.unsubscribe(state)
	if state.stopPoll != nil {
		state.stopPoll()
		state.stopPoll = nil
	}
	log.ForContext(v.ctx).WithField("monitor_id", v.id).Info("monitor: visão encerrada")
}

func (v *View) resolveRange() (domain.DateRange, error) {
	if v.cfg.Range != nil {
		return *v.cfg.Range, nil
	}
	return domain.QuickRange(v.cfg.RangeKind, v.cfg.Now(), v.cfg.Location)
}

func (v *View) publish(state *viewState) {
	snap := &Snapshot{
		ID:              v.id,
		OwnerID:         v.OwnerID(),
		CompanyID:       state.companyID,
		Range:           state.rng,
		Loading:         state.inFlight,
		Live:            state.subC != nil,
		Sequence:        state.seq,
		StaleDiscarded:  state.discarded,
		UpdatedAt:       v.cfg.Now(),
		FailedCompanies: append([]string{}, state.failed...),
	}
	if state.loaded || state.analytics.TotalVotes > 0 {
		analytics := state.analytics
		snap.Analytics = &analytics
	}
	if state.lastErr != nil {
		snap.Error = state.lastErr.Error()
	}
	v.snapshot.Store(snap)
}

// rangeRef devolve uma cópia para que o Analytics publicado não aponte para o estado do loop
func rangeRef(r domain.DateRange) *domain.DateRange {
	return &r
}

func sameRange(a, b domain.DateRange) bool {
	return a.Start.Equal(b.Start) && a.End.Equal(b.End)
}
