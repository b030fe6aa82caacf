package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/satisfaction-monitor-api/internal/config"
)

// O histórico de relatórios é a única carga no banco; o pool fica pequeno
const (
	maxOpenConns    = 5
	maxIdleConns    = 2
	connMaxIdleTime = 5 * time.Minute
)

type Connection struct {
	*sql.DB
}

// NewConnection abre o pool e só retorna depois do primeiro ping
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão com o PostgreSQL")
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "PostgreSQL não respondeu ao ping")
	}

	return &Connection{DB: db}, nil
}

// NewFromDB envolve um *sql.DB já aberto (script de migração e sqlmock)
func NewFromDB(db *sql.DB) *Connection {
	return &Connection{DB: db}
}

// InTx executa fn numa transação; erro ou panic fazem rollback
func (c *Connection) InTx(ctx context.Context, fn func(q Queryer) error) (err error) {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao iniciar transação")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback falhou: %v", rbErr)
		}
		return err
	}

	return tx.Commit()
}
