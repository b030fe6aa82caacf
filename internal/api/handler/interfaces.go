package handler

import (
	"context"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/reporting"
)

// ReportExporter é implementado por reporting.Service
type ReportExporter interface {
	Export(ctx context.Context, session *domain.SessionContext, req reporting.ExportRequest) (*reporting.Document, error)
	History(ctx context.Context, companyID string, limit int) ([]domain.ReportRecord, error)
}

// MonitorRegistry é implementado por monitoring.Registry
type MonitorRegistry interface {
	Open(session *domain.SessionContext, req monitoring.OpenRequest) (*monitoring.View, error)
	Get(id string) (*monitoring.View, error)
	Close(id string) error
}

// LookupSource fornece os nomes e botões das empresas para montar os gráficos do monitor
type LookupSource interface {
	Lookups() *domain.Lookups
}

// CronJob é uma tarefa agendada que também pode ser disparada pela API
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}
