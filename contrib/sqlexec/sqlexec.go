// Package sqlexec runs generated queries and scripts on a MySQL-compatible
// server through database/sql.
package sqlexec

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/wdetools/sqlgen"
	"github.com/wdetools/sqlgen/pkg/logger"
)

// MySQL error number for a duplicate key.
const mysqlDuplicateEntry = 1062

// Executor runs queries on a database.
type Executor struct {
	db  *sql.DB
	log logger.Logger
}

// Result summarizes an executed script.
type Result struct {
	Statements   int
	RowsAffected int64
}

// New returns an Executor on db. A nil log discards messages.
func New(db *sql.DB, log logger.Logger) *Executor {
	if log == nil {
		log = logger.Nop()
	}
	return &Executor{db: db, log: log}
}

// Open connects to the server named by a go-sql-driver/mysql DSN, e.g.
// "user:pass@tcp(localhost:3306)/world".
func Open(dsn string, log logger.Logger) (*Executor, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}

	return New(sql.OpenDB(connector), log), nil
}

// Close closes the database.
func (e *Executor) Close() error {
	return e.db.Close()
}

// Exec runs q and returns the number of affected rows. Comments, blank lines
// and empty queries are not sent.
func (e *Executor) Exec(ctx context.Context, q sqlgen.Query) (int64, error) {
	if !executable(q) {
		return 0, nil
	}

	res, err := e.db.ExecContext(ctx, q.String())
	if err != nil {
		return 0, err
	}
	return rowsAffected(res), nil
}

// ExecScript runs the statements and variable definitions of s in order,
// inside one transaction so session variables carry over. The first failure
// rolls the transaction back.
func (e *Executor) ExecScript(ctx context.Context, s sqlgen.Script) (Result, error) {
	var result Result

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}

	for i, q := range s.Queries() {
		if !executable(q) {
			continue
		}

		res, err := tx.ExecContext(ctx, q.String())
		if err != nil {
			e.log.Error("statement failed", "index", i, "error", err.Error())
			if rbErr := tx.Rollback(); rbErr != nil {
				e.log.Warn("rollback failed", "error", rbErr.Error())
			}
			return Result{}, fmt.Errorf("statement %d: %w", i, err)
		}

		result.Statements++
		result.RowsAffected += rowsAffected(res)
		e.log.Debug("statement executed", "index", i, "kind", q.Kind().String())
	}

	if err := tx.Commit(); err != nil {
		return Result{}, err
	}

	e.log.Info("script executed", "statements", result.Statements, "rows", result.RowsAffected)
	return result, nil
}

// IsDuplicateEntry reports whether err is a duplicate key error.
func IsDuplicateEntry(err error) bool {
	var e *mysql.MySQLError
	return errors.As(err, &e) && e.Number == mysqlDuplicateEntry
}

func executable(q sqlgen.Query) bool {
	if q.IsEmpty() {
		return false
	}
	switch q.Kind() {
	case sqlgen.KindComment, sqlgen.KindBlankLine:
		return false
	}
	return true
}

func rowsAffected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}
