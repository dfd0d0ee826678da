package usecase

import (
	"context"
	"errors"
	"time"

	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
)

// VoteService implements the voting protocol's business rules. It
// orchestrates the repository and token ledger to implement the
// VoteUseCase interface: all validation and authorization happens here,
// while the atomic money movement is delegated to the repository so a
// failure can never leave partial state behind.
type VoteService struct {
	repo   port.VoteRepository
	ledger port.TokenLedger

	// withdrawAuthority is the single identity allowed to drain the
	// treasury. It is configured at deployment and independent of any
	// campaign creator.
	withdrawAuthority domain.Identity

	// now returns the current unix timestamp. Overridable in tests.
	now func() int64
}

var _ port.VoteUseCase = (*VoteService)(nil)

// NewVoteService creates a new service with the provided repository,
// ledger and treasury withdraw authority.
func NewVoteService(repo port.VoteRepository, ledger port.TokenLedger, withdrawAuthority domain.Identity) *VoteService {
	return &VoteService{
		repo:              repo,
		ledger:            ledger,
		withdrawAuthority: withdrawAuthority,
		now:               func() int64 { return time.Now().Unix() },
	}
}

// CreateCampaign validates the inputs and allocates a new campaign at the
// address derived from its title. The campaign starts active with zero
// votes and no contestants.
func (s *VoteService) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if l := len(req.Title); l == 0 || l > domain.MaxTitleLen {
		return nil, domain.ErrTitleTooLong
	}
	if len(req.BannerURL) > domain.MaxURLLen {
		return nil, domain.ErrURLTooLong
	}
	if req.FeePercentage < 0 || req.FeePercentage > domain.MaxFeePercentage {
		return nil, domain.ErrInvalidFeePercentage
	}
	if req.StartTime >= req.EndTime {
		return nil, domain.ErrInvalidTimeRange
	}
	if req.EndTime <= s.now() {
		return nil, domain.ErrEndTimeInPast
	}

	c := domain.Campaign{
		Address:       domain.CampaignAddress(req.Title),
		Title:         req.Title,
		Creator:       req.Creator,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		BannerURL:     req.BannerURL,
		FeePercentage: req.FeePercentage,
		IsActive:      true,
	}
	if err := s.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// EditCampaign applies a partial update to a campaign. Only the creator
// may edit; nil fields are left untouched and supplied fields are
// re-validated with the same rules as creation.
func (s *VoteService) EditCampaign(ctx context.Context, title string, req port.EditCampaignReq) (*domain.Campaign, error) {
	c, err := s.repo.GetCampaign(ctx, domain.CampaignAddress(title))
	if err != nil {
		return nil, err
	}
	if c.Creator != req.Caller {
		return nil, domain.ErrUnauthorized
	}
	if req.EndTime != nil {
		if *req.EndTime <= s.now() {
			return nil, domain.ErrEndTimeInPast
		}
		if *req.EndTime <= c.StartTime {
			return nil, domain.ErrInvalidTimeRange
		}
	}
	if req.BannerURL != nil && len(*req.BannerURL) > domain.MaxURLLen {
		return nil, domain.ErrURLTooLong
	}
	if req.FeePercentage != nil && (*req.FeePercentage < 0 || *req.FeePercentage > domain.MaxFeePercentage) {
		return nil, domain.ErrInvalidFeePercentage
	}

	if req.EndTime != nil {
		c.EndTime = *req.EndTime
	}
	if req.BannerURL != nil {
		c.BannerURL = *req.BannerURL
	}
	if req.FeePercentage != nil {
		c.FeePercentage = *req.FeePercentage
	}
	if err = s.repo.UpdateCampaign(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

// PauseCampaign deactivates a campaign. Creator only; independent of the
// voting window.
func (s *VoteService) PauseCampaign(ctx context.Context, title string, caller domain.Identity) (*domain.Campaign, error) {
	return s.setActive(ctx, title, caller, false)
}

// ActivateCampaign reactivates a campaign. Creator only; independent of
// the voting window.
func (s *VoteService) ActivateCampaign(ctx context.Context, title string, caller domain.Identity) (*domain.Campaign, error) {
	return s.setActive(ctx, title, caller, true)
}

func (s *VoteService) setActive(ctx context.Context, title string, caller domain.Identity, active bool) (*domain.Campaign, error) {
	c, err := s.repo.GetCampaign(ctx, domain.CampaignAddress(title))
	if err != nil {
		return nil, err
	}
	if c.Creator != caller {
		return nil, domain.ErrUnauthorized
	}
	c.IsActive = active
	if err = s.repo.UpdateCampaign(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddContestant appends a contestant to the campaign roster with the next
// ordinal ID. The roster may be edited regardless of the activation flag
// or the voting window.
func (s *VoteService) AddContestant(ctx context.Context, title string, req port.AddContestantReq) (*domain.Contestant, error) {
	c, err := s.repo.GetCampaign(ctx, domain.CampaignAddress(title))
	if err != nil {
		return nil, err
	}
	if c.Creator != req.Caller {
		return nil, domain.ErrUnauthorized
	}
	if l := len(req.Name); l == 0 || l > domain.MaxNameLen {
		return nil, domain.ErrInvalidName
	}
	if len(req.ImageURL) > domain.MaxURLLen {
		return nil, domain.ErrURLTooLong
	}
	if len(req.Bio) > domain.MaxBioLen {
		return nil, domain.ErrBioTooLong
	}

	ct := domain.Contestant{
		Campaign: c.Address,
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Bio:      req.Bio,
	}
	if err = s.repo.AddContestant(ctx, c.Address, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// EditContestant applies a partial update to a contestant's display
// fields. Only the creator of the owning campaign may edit.
func (s *VoteService) EditContestant(ctx context.Context, title string, contestantID int, req port.EditContestantReq) (*domain.Contestant, error) {
	c, err := s.repo.GetCampaign(ctx, domain.CampaignAddress(title))
	if err != nil {
		return nil, err
	}
	if c.Creator != req.Caller {
		return nil, domain.ErrUnauthorized
	}
	ct, err := s.repo.GetContestant(ctx, domain.ContestantAddress(c.Address, contestantID))
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if l := len(*req.Name); l == 0 || l > domain.MaxNameLen {
			return nil, domain.ErrInvalidName
		}
	}
	if req.ImageURL != nil && len(*req.ImageURL) > domain.MaxURLLen {
		return nil, domain.ErrURLTooLong
	}
	if req.Bio != nil && len(*req.Bio) > domain.MaxBioLen {
		return nil, domain.ErrBioTooLong
	}

	if req.Name != nil {
		ct.Name = *req.Name
	}
	if req.ImageURL != nil {
		ct.ImageURL = *req.ImageURL
	}
	if req.Bio != nil {
		ct.Bio = *req.Bio
	}
	if err = s.repo.UpdateContestant(ctx, *ct); err != nil {
		return nil, err
	}
	return ct, nil
}

// CastVote commits a voter's tokens to a contestant. Preconditions are
// checked in protocol order (activation window, vote-once, amount,
// contestant) and the repository applies the transfer split and counter
// updates as one atomic unit. The full gross amount counts toward the
// contestant and campaign accumulators; the treasury receives the
// rounded-down fee share and the campaign vault the remainder.
func (s *VoteService) CastVote(ctx context.Context, title string, req port.CastVoteReq) (*domain.VoterRecord, error) {
	c, err := s.repo.GetCampaign(ctx, domain.CampaignAddress(title))
	if err != nil {
		return nil, err
	}
	if !c.IsActive || !c.InWindow(s.now()) {
		return nil, domain.ErrCampaignNotActiveOrEnded
	}

	// vote-once is judged before contestant resolution, so a repeat vote
	// fails the same way whatever ordinal it names
	recAddr := domain.VoterRecordAddress(c.Address, req.Voter)
	rec, err := s.repo.GetVoterRecord(ctx, recAddr)
	switch {
	case err == nil && rec.HasVoted:
		return nil, domain.ErrAlreadyVoted
	case err != nil && !errors.Is(err, domain.ErrVoterRecordNotFound):
		return nil, err
	}

	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	ctAddr := domain.ContestantAddress(c.Address, req.ContestantID)
	if _, err = s.repo.GetContestant(ctx, ctAddr); err != nil {
		return nil, err
	}

	net, fee := domain.SplitFee(req.Amount, c.FeePercentage)
	return s.repo.CastVote(ctx, port.CastVote{
		Campaign:    c.Address,
		Contestant:  ctAddr,
		VoterRecord: recAddr,
		VoterWallet: domain.WalletAddress(req.Voter),
		Vault:       domain.VaultAddress(c.Address),
		Treasury:    domain.TreasuryAddress(),
		Voter:       req.Voter,
		Amount:      req.Amount,
		Net:         net,
		Fee:         fee,
	})
}

// WithdrawFees transfers accumulated platform fees from the treasury to
// the destination identity's wallet. Only the configured withdraw
// authority may call it; the ledger rejects amounts above the treasury
// balance.
func (s *VoteService) WithdrawFees(ctx context.Context, req port.WithdrawFeesReq) error {
	if req.Caller != s.withdrawAuthority {
		return domain.ErrUnauthorized
	}
	if req.Amount <= 0 {
		return domain.ErrInvalidAmount
	}
	return s.ledger.Transfer(ctx, domain.TreasuryAddress(), domain.WalletAddress(req.Destination), req.Amount)
}

// GetCampaign returns a campaign by title.
func (s *VoteService) GetCampaign(ctx context.Context, title string) (*domain.Campaign, error) {
	return s.repo.GetCampaign(ctx, domain.CampaignAddress(title))
}

// ListCampaigns enumerates all campaigns.
func (s *VoteService) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return s.repo.ListCampaigns(ctx)
}

// GetContestant returns a contestant by campaign title and ordinal.
func (s *VoteService) GetContestant(ctx context.Context, title string, contestantID int) (*domain.Contestant, error) {
	return s.repo.GetContestant(ctx, domain.ContestantAddress(domain.CampaignAddress(title), contestantID))
}

// ListContestants returns a campaign's roster ordered by ordinal.
func (s *VoteService) ListContestants(ctx context.Context, title string) ([]domain.Contestant, error) {
	return s.repo.ListContestants(ctx, domain.CampaignAddress(title))
}

// GetVoterRecord returns an identity's vote marker within a campaign.
func (s *VoteService) GetVoterRecord(ctx context.Context, title string, voter domain.Identity) (*domain.VoterRecord, error) {
	return s.repo.GetVoterRecord(ctx, domain.VoterRecordAddress(domain.CampaignAddress(title), voter))
}

// TreasuryBalance returns the accumulated platform fee balance.
func (s *VoteService) TreasuryBalance(ctx context.Context) (int64, error) {
	return s.ledger.Balance(ctx, domain.TreasuryAddress())
}

// CampaignVaultBalance returns the pooled (net of fees) balance of a
// campaign.
func (s *VoteService) CampaignVaultBalance(ctx context.Context, title string) (int64, error) {
	return s.ledger.Balance(ctx, domain.VaultAddress(domain.CampaignAddress(title)))
}
