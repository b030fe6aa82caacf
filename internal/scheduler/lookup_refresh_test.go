package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/fetching/mocks"
	"go.uber.org/mock/gomock"
)

func newTestLookupRefreshService(refresher LookupRefresher) *LookupRefreshService {
	return &LookupRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: LookupRefreshConfig{
			CronSchedule: "*/10 * * * *",
			SyncEnabled:  true,
			ServiceToken: "service-token",
			Timeout:      time.Second,
		},
		refresher: refresher,
	}
}

func TestLookupRefreshService_refreshLookups(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *mocks.MockVoteFetcher)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Atualização com sucesso - registra contagens",
			setup: func(m *mocks.MockVoteFetcher) {
				m.EXPECT().
					RefreshLookups(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, session *domain.SessionContext) (*domain.Lookups, error) {
						assert.Equal(t, "service-token", session.Token)
						return domain.NewLookups(
							[]domain.Company{{ID: "1"}, {ID: "2"}},
							[]domain.ServiceInfo{{ID: "almoco"}},
							time.Now(),
						), nil
					})
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 2, status["companies"])
				assert.Equal(t, 1, status["services"])
				assert.Equal(t, "", status["last_sync_error"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Falha no backend - guarda o erro e não marca conclusão",
			setup: func(m *mocks.MockVoteFetcher) {
				m.EXPECT().
					RefreshLookups(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("backend fora do ar"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "backend fora do ar", status["last_sync_error"])
				assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
				assert.False(t, status["sync_running"].(bool))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			refresher := mocks.NewMockVoteFetcher(ctrl)
			tt.setup(refresher)

			service := newTestLookupRefreshService(refresher)
			service.refreshLookups()

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestLookupRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockVoteFetcher(ctrl)
	done := make(chan struct{})

	refresher.EXPECT().
		RefreshLookups(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, session *domain.SessionContext) (*domain.Lookups, error) {
			defer close(done)
			return domain.NewLookups(nil, nil, time.Now()), nil
		})

	service := newTestLookupRefreshService(refresher)
	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("atualização manual não executou")
	}
	assert.Eventually(t, func() bool {
		return !service.GetStatus()["sync_running"].(bool)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLookupRefreshService_StartDisabled(t *testing.T) {
	service := newTestLookupRefreshService(nil)
	service.config.SyncEnabled = false

	require.NoError(t, service.Start(context.Background()))
	assert.Empty(t, service.scheduler.Jobs())
}

func TestLookupRefreshService_StartInvalidCron(t *testing.T) {
	service := newTestLookupRefreshService(nil)
	service.config.CronSchedule = "não é cron"

	assert.Error(t, service.Start(context.Background()))
}

func TestPollScheduler_EveryAndStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	poller := NewPollScheduler(time.UTC)
	poller.Start(ctx)

	ticks := make(chan struct{}, 10)
	stop, err := poller.Every(20*time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 1, poller.Jobs())

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("job periódico não executou")
	}

	stop()
	stop()
	assert.Equal(t, 0, poller.Jobs())
}
