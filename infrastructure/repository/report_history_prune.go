package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/database/postgres"
)

const pruneStatementTimeout = "SET LOCAL statement_timeout = '30s'"

// PruneReportHistory remove registros criados antes de cutoff e devolve quantos saíram
func PruneReportHistory(ctx context.Context, db postgres.TxRunner, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(reportHistoryTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var removed int64
	err = db.InTx(ctx, func(q postgres.Queryer) error {
		if _, err := q.ExecContext(ctx, pruneStatementTimeout); err != nil {
			return err
		}

		result, err := q.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		removed, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover histórico antigo")
	}

	return removed, nil
}
