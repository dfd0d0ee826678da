package port

import (
	"context"

	"fanvote/internal/core/domain"
)

// TokenLedger moves quantities of the fungible asset between token
// accounts. It stands in for the host asset ledger: transfers are atomic
// and reject on insufficient balance, and the protocol never creates or
// destroys tokens outside Mint.
type TokenLedger interface {
	// Transfer moves amount from one account to another. It returns
	// domain.ErrInsufficientFunds when the source balance is short and
	// domain.ErrInvalidAmount for non-positive amounts.
	Transfer(ctx context.Context, from, to domain.Address, amount int64) error
	// Balance returns the current balance of an account. Unknown accounts
	// report zero.
	Balance(ctx context.Context, addr domain.Address) (int64, error)
	// Mint credits an account out of thin air. Seed and test funding only.
	Mint(ctx context.Context, to domain.Address, amount int64) error
}
