package port

import (
	"context"

	"fanvote/internal/core/domain"
)

// VoteRepository defines the persistence layer for the voting protocol. It
// is an outbound port in hexagonal architecture. Implementations must be
// concurrency-safe: AddContestant assigns gap-free ordinals under
// concurrent calls, and CastVote is all-or-nothing, so balances, counters
// and the voter record move together or not at all.
type VoteRepository interface {
	// CreateCampaign stores a new campaign at its derived address. It
	// returns domain.ErrDuplicateCampaign when the address is occupied.
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign returns the campaign at the given address, or
	// domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, addr domain.Address) (*domain.Campaign, error)
	// ListCampaigns enumerates all campaigns for the browsing surface.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// UpdateCampaign overwrites the mutable fields of an existing campaign.
	UpdateCampaign(ctx context.Context, c domain.Campaign) error

	// AddContestant assigns the next ordinal, stores the contestant and
	// bumps the campaign's contestant count in one atomic step. The
	// contestant's ID and address fields are filled in on return.
	AddContestant(ctx context.Context, campaign domain.Address, ct *domain.Contestant) error
	// GetContestant returns the contestant at the given address, or
	// domain.ErrContestantNotFound.
	GetContestant(ctx context.Context, addr domain.Address) (*domain.Contestant, error)
	// ListContestants returns a campaign's roster ordered by ordinal.
	ListContestants(ctx context.Context, campaign domain.Address) ([]domain.Contestant, error)
	// UpdateContestant overwrites the display fields of a contestant.
	UpdateContestant(ctx context.Context, ct domain.Contestant) error

	// GetVoterRecord returns the vote marker at the given address, or
	// domain.ErrVoterRecordNotFound.
	GetVoterRecord(ctx context.Context, addr domain.Address) (*domain.VoterRecord, error)

	// CastVote applies a resolved vote atomically: it creates the voter
	// record (failing with domain.ErrAlreadyVoted if one exists), debits
	// the voter's wallet by the gross amount (domain.ErrInsufficientFunds
	// on shortfall), credits the vault and treasury with the net/fee
	// split, and bumps the contestant and campaign accumulators. Races on
	// the same voter record key must let at most one call through.
	CastVote(ctx context.Context, v CastVote) (*domain.VoterRecord, error)
}

// CastVote carries a fully-resolved vote into the repository. Addresses
// are pre-derived and the fee split pre-computed by the usecase; Net+Fee
// always equals Amount.
type CastVote struct {
	Campaign    domain.Address
	Contestant  domain.Address
	VoterRecord domain.Address
	VoterWallet domain.Address
	Vault       domain.Address
	Treasury    domain.Address
	Voter       domain.Identity
	Amount      int64
	Net         int64
	Fee         int64
}
