package sqlexec

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdetools/sqlgen"
)

func newMock(t *testing.T) (*Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, nil), mock
}

func TestExec(t *testing.T) {
	exec, mock := newMock(t)
	table := sqlgen.NewTable("t")

	mock.ExpectExec("DELETE FROM `t` WHERE `id` IN (1, 2);").WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := exec.Exec(context.Background(), table.WhereIn("id", 1, 2).Delete())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// nothing is sent for these
	for _, q := range []sqlgen.Query{sqlgen.Comment("x"), sqlgen.BlankLine(), table.BulkInsert(nil, false)} {
		n, err = exec.Exec(context.Background(), q)
		require.NoError(t, err)
		assert.Zero(t, n)
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecScript(t *testing.T) {
	exec, mock := newMock(t)
	table := sqlgen.NewTable("creature")

	script := sqlgen.NewScript().
		Comment("creature").
		DefineVariable("guid", 100).
		Add(table.WhereIn("guid", sqlgen.NewVariable("guid")).Delete()).
		Add(table.Insert(sqlgen.NewRow(sqlgen.Col("guid", sqlgen.NewVariable("guid")), sqlgen.Col("id", 6)))).
		BlankLine()

	mock.ExpectBegin()
	mock.ExpectExec("SET @guid := 100;").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `creature` WHERE `guid` IN (@guid);").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `creature` (`guid`, `id`) VALUES\n(@guid, 6);").WillReturnResult(sqlmock.NewResult(100, 1))
	mock.ExpectCommit()

	res, err := exec.ExecScript(context.Background(), script)
	require.NoError(t, err)
	assert.Equal(t, Result{Statements: 3, RowsAffected: 2}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecScript_rollback(t *testing.T) {
	exec, mock := newMock(t)
	table := sqlgen.NewTable("t")

	script := sqlgen.NewScript(
		table.Insert(sqlgen.NewRow(sqlgen.Col("id", 1))),
		table.Insert(sqlgen.NewRow(sqlgen.Col("id", 1))),
	)

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `t` (`id`) VALUES\n(1);").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `t` (`id`) VALUES\n(1);").WillReturnError(dup)
	mock.ExpectRollback()

	_, err := exec.ExecScript(context.Background(), script)
	require.Error(t, err)
	assert.ErrorContains(t, err, "statement 1")
	assert.True(t, IsDuplicateEntry(err))
	assert.True(t, errors.Is(err, dup))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecScript_beginError(t *testing.T) {
	exec, mock := newMock(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := exec.ExecScript(context.Background(), sqlgen.NewScript(sqlgen.Comment("x")))
	assert.ErrorContains(t, err, "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsDuplicateEntry(t *testing.T) {
	t.Parallel()

	assert.False(t, IsDuplicateEntry(nil))
	assert.False(t, IsDuplicateEntry(errors.New("Duplicate entry")))
	assert.False(t, IsDuplicateEntry(&mysql.MySQLError{Number: 1146}))
	assert.True(t, IsDuplicateEntry(&mysql.MySQLError{Number: 1062}))
}

func TestOpen(t *testing.T) {
	t.Parallel()

	_, err := Open("not a dsn", nil)
	assert.ErrorContains(t, err, "invalid DSN")

	exec, err := Open("user:pass@tcp(127.0.0.1:3306)/world", nil)
	require.NoError(t, err)
	require.NoError(t, exec.Close())
}
