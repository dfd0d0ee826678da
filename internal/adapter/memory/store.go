// Package memory provides an in-process implementation of the vote
// repository and token ledger: a single arena keyed by derived address.
// It backs tests and the STORE=memory deployment mode.
package memory

import (
	"context"
	"sort"
	"sync"

	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
)

// Store holds every record and token balance in mutex-guarded maps keyed
// by derived address. The single mutex serializes all writes, which
// trivially satisfies the protocol's per-key linearizability requirement:
// two racing votes for the same (campaign, voter) pair cannot both pass
// the record check.
type Store struct {
	mu          sync.Mutex
	campaigns   map[domain.Address]domain.Campaign
	contestants map[domain.Address]domain.Contestant
	voters      map[domain.Address]domain.VoterRecord
	balances    map[domain.Address]int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		campaigns:   make(map[domain.Address]domain.Campaign),
		contestants: make(map[domain.Address]domain.Contestant),
		voters:      make(map[domain.Address]domain.VoterRecord),
		balances:    make(map[domain.Address]int64),
	}
}

var (
	_ port.VoteRepository = (*Store)(nil)
	_ port.TokenLedger    = (*Store)(nil)
)

// cloneCampaign copies a campaign including its leaderboard slice so
// callers never alias stored state.
func cloneCampaign(c domain.Campaign) domain.Campaign {
	if c.TopVoters != nil {
		tv := make([]domain.TopVoter, len(c.TopVoters))
		copy(tv, c.TopVoters)
		c.TopVoters = tv
	}
	return c
}

// CreateCampaign stores a campaign unless its address is occupied.
func (s *Store) CreateCampaign(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.Address]; ok {
		return domain.ErrDuplicateCampaign
	}
	s.campaigns[c.Address] = cloneCampaign(c)
	return nil
}

// GetCampaign returns a copy of the campaign at addr.
func (s *Store) GetCampaign(_ context.Context, addr domain.Address) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[addr]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	c = cloneCampaign(c)
	return &c, nil
}

// ListCampaigns returns all campaigns ordered by title.
func (s *Store) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, cloneCampaign(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// UpdateCampaign overwrites an existing campaign.
func (s *Store) UpdateCampaign(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.Address]; !ok {
		return domain.ErrCampaignNotFound
	}
	s.campaigns[c.Address] = cloneCampaign(c)
	return nil
}

// AddContestant assigns the next ordinal under the store lock, so
// concurrent calls produce gap-free IDs.
func (s *Store) AddContestant(_ context.Context, campaign domain.Address, ct *domain.Contestant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[campaign]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	if c.ContestantCount >= domain.MaxContestants {
		return domain.ErrTooManyContestants
	}
	ct.Campaign = campaign
	ct.ContestantID = c.ContestantCount
	ct.Address = domain.ContestantAddress(campaign, ct.ContestantID)
	ct.VoteCount = 0
	s.contestants[ct.Address] = *ct
	c.ContestantCount++
	s.campaigns[campaign] = c
	return nil
}

// GetContestant returns a copy of the contestant at addr.
func (s *Store) GetContestant(_ context.Context, addr domain.Address) (*domain.Contestant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ct, ok := s.contestants[addr]
	if !ok {
		return nil, domain.ErrContestantNotFound
	}
	return &ct, nil
}

// ListContestants returns a campaign's roster ordered by ordinal.
func (s *Store) ListContestants(_ context.Context, campaign domain.Address) ([]domain.Contestant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[campaign]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	out := make([]domain.Contestant, 0, c.ContestantCount)
	for i := 0; i < c.ContestantCount; i++ {
		if ct, ok := s.contestants[domain.ContestantAddress(campaign, i)]; ok {
			out = append(out, ct)
		}
	}
	return out, nil
}

// UpdateContestant overwrites an existing contestant.
func (s *Store) UpdateContestant(_ context.Context, ct domain.Contestant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contestants[ct.Address]; !ok {
		return domain.ErrContestantNotFound
	}
	s.contestants[ct.Address] = ct
	return nil
}

// GetVoterRecord returns a copy of the vote marker at addr.
func (s *Store) GetVoterRecord(_ context.Context, addr domain.Address) (*domain.VoterRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.voters[addr]
	if !ok {
		return nil, domain.ErrVoterRecordNotFound
	}
	return &rec, nil
}

// CastVote applies the vote-once check, the balance split and the counter
// bumps under one lock acquisition. On any failure nothing is mutated.
func (s *Store) CastVote(_ context.Context, v port.CastVote) (*domain.VoterRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.voters[v.VoterRecord]; ok && rec.HasVoted {
		return nil, domain.ErrAlreadyVoted
	}
	c, ok := s.campaigns[v.Campaign]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	ct, ok := s.contestants[v.Contestant]
	if !ok {
		return nil, domain.ErrContestantNotFound
	}
	if s.balances[v.VoterWallet] < v.Amount {
		return nil, domain.ErrInsufficientFunds
	}

	s.balances[v.VoterWallet] -= v.Amount
	s.balances[v.Vault] += v.Net
	s.balances[v.Treasury] += v.Fee

	ct.VoteCount += v.Amount
	s.contestants[v.Contestant] = ct

	rec := s.voters[v.VoterRecord]
	rec.Address = v.VoterRecord
	rec.Campaign = v.Campaign
	rec.Voter = v.Voter
	rec.HasVoted = true
	rec.TotalVoted += v.Amount
	s.voters[v.VoterRecord] = rec

	c = cloneCampaign(c)
	c.TotalVotes += v.Amount
	c.RecordTopVoter(v.Voter, rec.TotalVoted)
	s.campaigns[v.Campaign] = c

	out := rec
	return &out, nil
}

// Transfer moves amount between token accounts atomically.
func (s *Store) Transfer(_ context.Context, from, to domain.Address, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balances[from] < amount {
		return domain.ErrInsufficientFunds
	}
	s.balances[from] -= amount
	s.balances[to] += amount
	return nil
}

// Balance reports an account's balance; unknown accounts are zero.
func (s *Store) Balance(_ context.Context, addr domain.Address) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[addr], nil
}

// Mint credits an account. Seed and test funding only.
func (s *Store) Mint(_ context.Context, to domain.Address, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[to] += amount
	return nil
}
