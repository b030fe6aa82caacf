package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

const reportHistoryTable = "report_history"

// ReportHistorySchema cria a tabela do histórico; usada no boot e pelo script de migração
const ReportHistorySchema = `
CREATE TABLE IF NOT EXISTS report_history (
	id          VARCHAR(21) PRIMARY KEY,
	company_id  VARCHAR(64) NOT NULL DEFAULT '',
	user_id     INTEGER     NOT NULL DEFAULT 0,
	format      VARCHAR(8)  NOT NULL,
	start_date  DATE        NOT NULL,
	end_date    DATE        NOT NULL,
	filename    TEXT        NOT NULL,
	pages       INTEGER     NOT NULL,
	truncated   BOOLEAN     NOT NULL DEFAULT FALSE,
	size_bytes  INTEGER     NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS report_history_company_created_idx ON report_history (company_id, created_at DESC);
`

var reportHistoryColumns = []string{
	"id", "company_id", "user_id", "format", "start_date", "end_date",
	"filename", "pages", "truncated", "size_bytes", "created_at",
}

type ReportHistoryRepository interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, record *domain.ReportRecord) error
	ListRecent(ctx context.Context, companyID string, limit int) ([]domain.ReportRecord, error)
}

type reportHistoryRepository struct {
	conn postgres.Queryer
}

func NewReportHistoryRepository(conn postgres.Queryer) ReportHistoryRepository {
	return &reportHistoryRepository{
		conn: conn,
	}
}

func (r *reportHistoryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, ReportHistorySchema); err != nil {
		return errors.Wrap(err, "erro ao criar tabela report_history")
	}
	return nil
}

func (r *reportHistoryRepository) Save(ctx context.Context, record *domain.ReportRecord) error {
	query, args, err := squirrel.
		Insert(reportHistoryTable).
		Columns(reportHistoryColumns...).
		Values(
			record.ID,
			record.CompanyID,
			record.UserID,
			string(record.Format),
			record.StartDate,
			record.EndDate,
			record.Filename,
			record.Pages,
			record.Truncated,
			record.SizeBytes,
			record.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		logrus.WithFields(logrus.Fields{
			"report_id": record.ID,
			"error":     err,
		}).Error("Erro ao salvar histórico de relatório")
		return errors.Wrap(err, "erro ao salvar histórico de relatório")
	}

	return nil
}

// ListRecent lista do mais novo para o mais antigo; companyID vazio lista todas as empresas
func (r *reportHistoryRepository) ListRecent(ctx context.Context, companyID string, limit int) ([]domain.ReportRecord, error) {
	queryBuilder := squirrel.
		Select(reportHistoryColumns...).
		From(reportHistoryTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}
	if companyID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"company_id": companyID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar histórico de relatórios")
	}
	defer rows.Close()

	records := make([]domain.ReportRecord, 0)
	for rows.Next() {
		record, err := scanReportRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanReportRecord(rows *sql.Rows) (domain.ReportRecord, error) {
	var (
		record domain.ReportRecord
		format string
	)

	if err := rows.Scan(
		&record.ID,
		&record.CompanyID,
		&record.UserID,
		&format,
		&record.StartDate,
		&record.EndDate,
		&record.Filename,
		&record.Pages,
		&record.Truncated,
		&record.SizeBytes,
		&record.CreatedAt,
	); err != nil {
		return domain.ReportRecord{}, errors.Wrap(err, "erro ao ler histórico de relatório")
	}

	record.Format = domain.ReportFormat(format)
	return record, nil
}
