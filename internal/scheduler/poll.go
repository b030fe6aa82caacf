package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// PollScheduler é o agendador compartilhado pelas atualizações periódicas dos monitores
type PollScheduler struct {
	scheduler *gocron.Scheduler
	// a cadeia Every().Do() do gocron não pode ser montada por duas goroutines ao mesmo tempo
	chainMutex sync.Mutex
}

func NewPollScheduler(loc *time.Location) *PollScheduler {
	if loc == nil {
		loc = time.Local
	}
	return &PollScheduler{scheduler: gocron.NewScheduler(loc)}
}

// Start inicia o agendador e o encerra quando o contexto for cancelado
func (p *PollScheduler) Start(ctx context.Context) {
	p.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização dos monitores")
		p.scheduler.Stop()
	}()
}

// Every agenda fn a cada interval, sem execução imediata. A função retornada remove o job.
func (p *PollScheduler) Every(interval time.Duration, fn func()) (func(), error) {
	p.chainMutex.Lock()
	job, err := p.scheduler.Every(interval).WaitForSchedule().Do(fn)
	p.chainMutex.Unlock()
	if err != nil {
		return nil, fmt.Errorf("erro ao agendar atualização do monitor: %w", err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			p.scheduler.RemoveByReference(job)
		})
	}, nil
}

// Jobs retorna quantas atualizações periódicas estão agendadas
func (p *PollScheduler) Jobs() int {
	return len(p.scheduler.Jobs())
}
