package port

import (
	"context"

	"fanvote/internal/core/domain"
)

// VoteUseCase defines the business operations of the voting protocol. This
// interface is the primary port into the application domain; the HTTP
// layer speaks it and mock implementations can be generated from it for
// testing.
//
// Every mutating method takes the caller identity as an opaque,
// already-authenticated value and fails with domain.ErrUnauthorized when
// it does not match the required authority. Failures never leave partial
// state behind.
type VoteUseCase interface {
	// CreateCampaign opens a new campaign at the address derived from its
	// title, active and empty.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	// EditCampaign updates only the supplied fields; nil means leave
	// unchanged. Each supplied field is re-validated with creation rules.
	EditCampaign(ctx context.Context, title string, req EditCampaignReq) (*domain.Campaign, error)
	// PauseCampaign and ActivateCampaign toggle the activation flag,
	// independent of the time window.
	PauseCampaign(ctx context.Context, title string, caller domain.Identity) (*domain.Campaign, error)
	ActivateCampaign(ctx context.Context, title string, caller domain.Identity) (*domain.Campaign, error)

	// AddContestant appends a contestant with the next ordinal ID.
	AddContestant(ctx context.Context, title string, req AddContestantReq) (*domain.Contestant, error)
	// EditContestant updates only the supplied display fields.
	EditContestant(ctx context.Context, title string, contestantID int, req EditContestantReq) (*domain.Contestant, error)

	// CastVote transfers the voter's tokens, splits the platform fee into
	// the treasury, and records the vote. One vote per voter per campaign.
	CastVote(ctx context.Context, title string, req CastVoteReq) (*domain.VoterRecord, error)

	// WithdrawFees drains accumulated fees from the treasury to the
	// destination identity's wallet. Only the configured withdraw
	// authority may call it.
	WithdrawFees(ctx context.Context, req WithdrawFeesReq) error

	// Read surface for the browsing pages.
	GetCampaign(ctx context.Context, title string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetContestant(ctx context.Context, title string, contestantID int) (*domain.Contestant, error)
	ListContestants(ctx context.Context, title string) ([]domain.Contestant, error)
	GetVoterRecord(ctx context.Context, title string, voter domain.Identity) (*domain.VoterRecord, error)
	TreasuryBalance(ctx context.Context) (int64, error)
	CampaignVaultBalance(ctx context.Context, title string) (int64, error)
}

// CreateCampaignReq carries the inputs of campaign creation.
type CreateCampaignReq struct {
	Title         string
	StartTime     int64
	EndTime       int64
	BannerURL     string
	FeePercentage int
	Creator       domain.Identity
}

// EditCampaignReq carries a partial campaign update. Nil fields are left
// unchanged; pointers are used instead of sentinels so zero values stay
// legitimate data.
type EditCampaignReq struct {
	EndTime       *int64
	BannerURL     *string
	FeePercentage *int
	Caller        domain.Identity
}

// AddContestantReq carries the inputs of contestant creation.
type AddContestantReq struct {
	Name     string
	ImageURL string
	Bio      string
	Caller   domain.Identity
}

// EditContestantReq carries a partial contestant update with the same nil
// semantics as EditCampaignReq.
type EditContestantReq struct {
	Name     *string
	ImageURL *string
	Bio      *string
	Caller   domain.Identity
}

// CastVoteReq carries a vote: the chosen contestant ordinal and the gross
// token amount to commit.
type CastVoteReq struct {
	ContestantID int
	Amount       int64
	Voter        domain.Identity
}

// WithdrawFeesReq carries a treasury withdrawal to a destination identity.
type WithdrawFeesReq struct {
	Amount      int64
	Destination domain.Identity
	Caller      domain.Identity
}
