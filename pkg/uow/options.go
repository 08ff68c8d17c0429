package uow

import "github.com/jackc/pgx/v5"

// TxOption настраивает транзакцию, открываемую в UnitOfWork.Do.
type TxOption func(*txConfig)

type txConfig struct {
	pgx.TxOptions
	attempts uint
}

// WithIsoLevel задает уровень изоляции транзакции.
func WithIsoLevel(level pgx.TxIsoLevel) TxOption {
	return func(c *txConfig) {
		c.IsoLevel = level
	}
}

// ReadOnly открывает транзакцию только для чтения.
func ReadOnly() TxOption {
	return func(c *txConfig) {
		c.AccessMode = pgx.ReadOnly
	}
}

// WithRetry повторяет транзакцию до attempts раз, если postgres откатил ее из-за deadlock
// или serialization failure. fn при этом вызывается заново, поэтому не должна иметь внешних эффектов.
func WithRetry(attempts uint) TxOption {
	return func(c *txConfig) {
		if attempts > 0 {
			c.attempts = attempts
		}
	}
}

func buildTxConfig(opts []TxOption) txConfig {
	conf := txConfig{attempts: 1}
	for _, opt := range opts {
		opt(&conf)
	}
	return conf
}
