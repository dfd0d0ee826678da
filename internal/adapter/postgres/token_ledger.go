package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fanvote/internal/core/domain"
)

// TokenLedger implements port.TokenLedger on the token_accounts table.
// Transfers run in a serializable transaction so the debit and credit land
// together or not at all.
type TokenLedger struct {
	pool *pgxpool.Pool
}

// NewTokenLedger returns a ledger backed by the given pool.
func NewTokenLedger(pool *pgxpool.Pool) *TokenLedger {
	return &TokenLedger{pool: pool}
}

// Transfer moves amount between two accounts.
func (l *TokenLedger) Transfer(ctx context.Context, from, to domain.Address, amount int64) (err error) {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer finishTx(ctx, tx, &err)
	if err = debit(ctx, tx, from, amount); err != nil {
		return err
	}
	return credit(ctx, tx, to, amount)
}

// Balance reports an account's balance; unknown accounts are zero.
func (l *TokenLedger) Balance(ctx context.Context, addr domain.Address) (int64, error) {
	var balance int64
	err := l.pool.QueryRow(ctx, `SELECT balance FROM token_accounts WHERE address = $1`, addr).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Mint credits an account, creating it on first use. Seed funding only.
func (l *TokenLedger) Mint(ctx context.Context, to domain.Address, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	_, err := l.pool.Exec(ctx, `INSERT INTO token_accounts (address, balance) VALUES ($1, $2)
ON CONFLICT (address) DO UPDATE SET balance = token_accounts.balance + EXCLUDED.balance`, to, amount)
	return err
}
