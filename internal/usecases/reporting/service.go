package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/aggregating"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/fetching"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/metrics"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/utils"
)

var ErrUnsupportedFormat = errors.New("reporting: formato de relatório não suportado")

// HistoryRepository persiste as exportações concluídas
type HistoryRepository interface {
	Save(ctx context.Context, record *domain.ReportRecord) error
	ListRecent(ctx context.Context, companyID string, limit int) ([]domain.ReportRecord, error)
}

type ServiceConfig struct {
	Title    string
	MaxPages int
	Location *time.Location
}

type ExportRequest struct {
	CompanyID string
	Range     domain.DateRange
	Format    domain.ReportFormat
}

type Service struct {
	fetcher   fetching.VoteFetcher
	history   HistoryRepository
	exporters map[domain.ReportFormat]Exporter
	cfg       ServiceConfig
	now       func() time.Time
}

// NewService cria o serviço de exportação; history pode ser nil quando não há banco configurado
func NewService(fetcher fetching.VoteFetcher, history HistoryRepository, cfg ServiceConfig, exporters ...Exporter) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if len(exporters) == 0 {
		exporters = []Exporter{NewPDFExporter(cfg.MaxPages), NewXLSXExporter()}
	}

	s := &Service{
		fetcher:   fetcher,
		history:   history,
		exporters: make(map[domain.ReportFormat]Exporter, len(exporters)),
		cfg:       cfg,
		now:       time.Now,
	}
	for _, e := range exporters {
		s.exporters[e.Format()] = e
	}
	return s
}

func (s *Service) Export(ctx context.Context, session *domain.SessionContext, req ExportRequest) (*Document, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"company_id": req.CompanyID,
		"format":     req.Format,
		"start_date": req.Range.StartDate(),
		"end_date":   req.Range.EndDate(),
	})

	exporter, ok := s.exporters[req.Format]
	if !ok {
		return nil, ErrUnsupportedFormat
	}

	var bundle *fetching.VoteBundle
	var err error
	if req.CompanyID == "" {
		bundle, err = s.fetcher.FetchVotesForAllCompanies(ctx, session, req.Range)
	} else {
		bundle, err = s.fetcher.FetchVotesForCompany(ctx, session, req.CompanyID, req.Range)
	}
	if err != nil {
		return nil, err
	}

	analytics := aggregating.Aggregate(bundle.Votes, bundle.Lookups, aggregating.Options{
		CompanyID: req.CompanyID,
		Range:     &req.Range,
		Location:  s.cfg.Location,
	})

	report := BuildReport(analytics, bundle.Lookups, req.Range, ReportOptions{
		Title:    s.cfg.Title,
		Now:      s.now(),
		Location: s.cfg.Location,
	})

	doc, err := exporter.Export(report)
	if err != nil {
		metrics.ReportsGenerated.WithLabelValues(string(req.Format), "error").Inc()
		logger.WithError(err).Error("reporting: falha ao gerar relatório")
		return nil, err
	}

	doc.ID, err = utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "reporting: falha ao gerar id")
	}

	metrics.ReportsGenerated.WithLabelValues(string(req.Format), "ok").Inc()
	metrics.ReportPages.Observe(float64(doc.Pages))

	if doc.Truncated {
		logger.WithField("pages", doc.Pages).Warn("reporting: relatório truncado no limite de páginas")
	}

	s.record(ctx, session, req, doc)

	logger.WithFields(log.Fields{
		"pages": doc.Pages,
		"bytes": len(doc.Data),
	}).Info("reporting: relatório gerado")

	return doc, nil
}

// History lista as últimas exportações; sem banco configurado a lista é vazia
func (s *Service) History(ctx context.Context, companyID string, limit int) ([]domain.ReportRecord, error) {
	if s.history == nil {
		return []domain.ReportRecord{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.history.ListRecent(ctx, companyID, limit)
}

// record não falha a exportação: o arquivo já foi gerado e o histórico é acessório
func (s *Service) record(ctx context.Context, session *domain.SessionContext, req ExportRequest, doc *Document) {
	if s.history == nil {
		return
	}

	record := &domain.ReportRecord{
		ID:        doc.ID,
		CompanyID: req.CompanyID,
		Format:    doc.Format,
		StartDate: req.Range.Start,
		EndDate:   req.Range.End,
		Filename:  doc.Filename,
		Pages:     doc.Pages,
		Truncated: doc.Truncated,
		SizeBytes: len(doc.Data),
		CreatedAt: s.now(),
	}
	if session != nil {
		record.UserID = session.UserID
	}

	if err := s.history.Save(ctx, record); err != nil {
		log.ForContext(ctx).WithError(err).Warn("reporting: falha ao registrar histórico do relatório")
	}
}
