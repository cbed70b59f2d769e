package pgxutil

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConnector hands out a single in-memory connection so tests can observe
// transaction outcomes without a real database.
type fakeConnector struct{ conn *fakeConn }

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c *fakeConnector) Driver() driver.Driver                        { return nil }

type fakeConn struct{ tx *fakeTx }

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (c *fakeConn) Close() error                        { return nil }
func (c *fakeConn) Begin() (driver.Tx, error) {
	c.tx = &fakeTx{}
	return c.tx, nil
}

type fakeTx struct{ committed, rolledBack bool }

func (t *fakeTx) Commit() error   { t.committed = true; return nil }
func (t *fakeTx) Rollback() error { t.rolledBack = true; return nil }

func TestWithSQLTx_CommitsOnSuccess(t *testing.T) {
	conn := &fakeConn{}
	db := sql.OpenDB(&fakeConnector{conn: conn})
	defer db.Close()

	called := false
	err := WithSQLTx(context.Background(), db, SQLTxConfig{
		Fn: func(tx *sql.Tx) error {
			called = true
			return nil
		},
	})
	require.NoError(t, err)
	assert.True(t, called)
	require.NotNil(t, conn.tx)
	assert.True(t, conn.tx.committed)
	assert.False(t, conn.tx.rolledBack)
}

func TestWithSQLTx_RollsBackOnError(t *testing.T) {
	conn := &fakeConn{}
	db := sql.OpenDB(&fakeConnector{conn: conn})
	defer db.Close()

	boom := errors.New("boom")
	err := WithSQLTx(context.Background(), db, SQLTxConfig{
		Fn: func(tx *sql.Tx) error { return boom },
	})
	require.ErrorIs(t, err, boom)
	require.NotNil(t, conn.tx)
	assert.False(t, conn.tx.committed)
	assert.True(t, conn.tx.rolledBack)
}
