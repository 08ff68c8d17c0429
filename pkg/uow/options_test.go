package uow

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestBuildTxConfig(t *testing.T) {
	conf := buildTxConfig(nil)
	assert.Equal(t, pgx.TxOptions{}, conf.TxOptions)
	assert.Equal(t, uint(1), conf.attempts)

	conf = buildTxConfig([]TxOption{WithIsoLevel(pgx.Serializable), ReadOnly(), WithRetry(3)})
	assert.Equal(t, pgx.Serializable, conf.IsoLevel)
	assert.Equal(t, pgx.ReadOnly, conf.AccessMode)
	assert.Equal(t, uint(3), conf.attempts)

	assert.Equal(t, uint(1), buildTxConfig([]TxOption{WithRetry(0)}).attempts)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&pgconn.PgError{Code: pgDeadlockDetected}))
	assert.True(t, isRetryable(&pgconn.PgError{Code: pgSerializationFailure}))
	assert.False(t, isRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryable(pgx.ErrNoRows))
}
