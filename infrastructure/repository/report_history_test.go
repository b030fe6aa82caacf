package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

func newMockRepository(t *testing.T) (ReportHistoryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReportHistoryRepository(postgres.NewFromDB(db)), mock
}

func sampleRecord() *domain.ReportRecord {
	return &domain.ReportRecord{
		ID:        "abc123",
		CompanyID: "12",
		UserID:    7,
		Format:    domain.ReportFormatPDF,
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC),
		Filename:  "relatorio-2024-05-01-2024-05-07.pdf",
		Pages:     3,
		Truncated: true,
		SizeBytes: 2048,
		CreatedAt: time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC),
	}
}

func TestReportHistoryRepository_Save(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock, record *domain.ReportRecord)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Sucesso",
			setup: func(mock sqlmock.Sqlmock, record *domain.ReportRecord) {
				mock.ExpectExec(`INSERT INTO report_history \(id,company_id,user_id,format,start_date,end_date,filename,pages,truncated,size_bytes,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10,\$11\)`).
					WithArgs(record.ID, record.CompanyID, record.UserID, "pdf", record.StartDate, record.EndDate,
						record.Filename, record.Pages, record.Truncated, record.SizeBytes, record.CreatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Erro do banco",
			setup: func(mock sqlmock.Sqlmock, record *domain.ReportRecord) {
				mock.ExpectExec(`INSERT INTO report_history`).
					WillReturnError(errors.New("duplicate key"))
			},
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "duplicate key")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			record := sampleRecord()
			tt.setup(mock, record)

			err := repo.Save(context.Background(), record)

			tt.validate(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReportHistoryRepository_ListRecent(t *testing.T) {
	record := sampleRecord()
	columns := []string{"id", "company_id", "user_id", "format", "start_date", "end_date",
		"filename", "pages", "truncated", "size_bytes", "created_at"}

	t.Run("Filtra por empresa", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT id, company_id, (.+) FROM report_history WHERE company_id = \$1 ORDER BY created_at DESC LIMIT 5`).
			WithArgs("12").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				record.ID, record.CompanyID, record.UserID, "pdf", record.StartDate, record.EndDate,
				record.Filename, record.Pages, record.Truncated, record.SizeBytes, record.CreatedAt,
			))

		records, err := repo.ListRecent(context.Background(), "12", 5)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, *record, records[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Todas as empresas sem resultados", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM report_history ORDER BY created_at DESC LIMIT 20`).
			WillReturnRows(sqlmock.NewRows(columns))

		records, err := repo.ListRecent(context.Background(), "", 20)

		require.NoError(t, err)
		assert.Empty(t, records)
		assert.NotNil(t, records)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReportHistoryRepository_EnsureSchema(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS report_history`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneReportHistory(t *testing.T) {
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, removed int64, err error)
	}{
		{
			name: "Sucesso",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`SET LOCAL statement_timeout`).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`DELETE FROM report_history WHERE created_at < \$1`).
					WithArgs(cutoff).
					WillReturnResult(sqlmock.NewResult(0, 4))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, removed int64, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(4), removed)
			},
		},
		{
			name: "Erro no delete faz rollback",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`SET LOCAL statement_timeout`).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`DELETE FROM report_history`).WillReturnError(errors.New("lock timeout"))
				mock.ExpectRollback()
			},
			validate: func(t *testing.T, removed int64, err error) {
				assert.Error(t, err)
				assert.Zero(t, removed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			removed, err := PruneReportHistory(context.Background(), postgres.NewFromDB(db), cutoff)
			tt.validate(t, removed, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
