package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
)

func seedCampaign(t *testing.T, s *Store, title string) domain.Address {
	t.Helper()
	addr := domain.CampaignAddress(title)
	err := s.CreateCampaign(context.Background(), domain.Campaign{
		Address:       addr,
		Title:         title,
		Creator:       "creator",
		StartTime:     0,
		EndTime:       1 << 40,
		FeePercentage: 5,
		IsActive:      true,
	})
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	return addr
}

func TestCreateCampaignDuplicateAddress(t *testing.T) {
	s := NewStore()
	seedCampaign(t, s, "show")
	err := s.CreateCampaign(context.Background(), domain.Campaign{Address: domain.CampaignAddress("show"), Title: "show"})
	if !errors.Is(err, domain.ErrDuplicateCampaign) {
		t.Fatalf("expected ErrDuplicateCampaign, got %v", err)
	}
}

// TestAddContestantConcurrent checks that racing roster additions produce
// strictly sequential, gap-free ordinals.
func TestAddContestantConcurrent(t *testing.T) {
	s := NewStore()
	addr := seedCampaign(t, s, "show")

	var wg sync.WaitGroup
	count := 30
	ids := make(chan int, count)
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			ct := domain.Contestant{Name: "x"}
			if err := s.AddContestant(context.Background(), addr, &ct); err != nil {
				t.Errorf("AddContestant: %v", err)
				return
			}
			ids <- ct.ContestantID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, count)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate ordinal %d", id)
		}
		seen[id] = true
	}
	for i := 0; i < count; i++ {
		if !seen[i] {
			t.Fatalf("missing ordinal %d", i)
		}
	}
	c, _ := s.GetCampaign(context.Background(), addr)
	if c.ContestantCount != count {
		t.Fatalf("contestant count = %d, want %d", c.ContestantCount, count)
	}
}

func TestContestantCap(t *testing.T) {
	s := NewStore()
	addr := seedCampaign(t, s, "show")
	for i := 0; i < domain.MaxContestants; i++ {
		ct := domain.Contestant{Name: "x"}
		if err := s.AddContestant(context.Background(), addr, &ct); err != nil {
			t.Fatalf("contestant %d: %v", i, err)
		}
	}
	ct := domain.Contestant{Name: "overflow"}
	if err := s.AddContestant(context.Background(), addr, &ct); !errors.Is(err, domain.ErrTooManyContestants) {
		t.Fatalf("expected ErrTooManyContestants, got %v", err)
	}
}

// TestCastVoteAtomic verifies that a failing vote leaves no trace: no
// balance moves, no counter bumps, no voter record.
func TestCastVoteAtomic(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	addr := seedCampaign(t, s, "show")
	ct := domain.Contestant{Name: "one"}
	if err := s.AddContestant(ctx, addr, &ct); err != nil {
		t.Fatal(err)
	}
	if err := s.Mint(ctx, domain.WalletAddress("voter"), 50); err != nil {
		t.Fatal(err)
	}

	vote := port.CastVote{
		Campaign:    addr,
		Contestant:  ct.Address,
		VoterRecord: domain.VoterRecordAddress(addr, "voter"),
		VoterWallet: domain.WalletAddress("voter"),
		Vault:       domain.VaultAddress(addr),
		Treasury:    domain.TreasuryAddress(),
		Voter:       "voter",
		Amount:      100, // more than funded
		Net:         95,
		Fee:         5,
	}
	if _, err := s.CastVote(ctx, vote); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if bal, _ := s.Balance(ctx, vote.VoterWallet); bal != 50 {
		t.Errorf("wallet touched: %d", bal)
	}
	if bal, _ := s.Balance(ctx, vote.Vault); bal != 0 {
		t.Errorf("vault touched: %d", bal)
	}
	if bal, _ := s.Balance(ctx, vote.Treasury); bal != 0 {
		t.Errorf("treasury touched: %d", bal)
	}
	c, _ := s.GetCampaign(ctx, addr)
	if c.TotalVotes != 0 {
		t.Errorf("campaign counter touched: %d", c.TotalVotes)
	}
	got, _ := s.GetContestant(ctx, ct.Address)
	if got.VoteCount != 0 {
		t.Errorf("contestant counter touched: %d", got.VoteCount)
	}
	if _, err := s.GetVoterRecord(ctx, vote.VoterRecord); !errors.Is(err, domain.ErrVoterRecordNotFound) {
		t.Errorf("voter record created: %v", err)
	}

	// now a passing vote, then verify the second is rejected
	vote.Amount, vote.Net, vote.Fee = 50, 48, 2
	rec, err := s.CastVote(ctx, vote)
	if err != nil {
		t.Fatalf("CastVote: %v", err)
	}
	if !rec.HasVoted || rec.TotalVoted != 50 {
		t.Fatalf("record wrong: %+v", rec)
	}
	if _, err = s.CastVote(ctx, vote); !errors.Is(err, domain.ErrAlreadyVoted) {
		t.Fatalf("expected ErrAlreadyVoted, got %v", err)
	}
}

// TestTransfer covers the plain ledger operations backing fee withdrawal.
func TestTransfer(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	from := domain.WalletAddress("a")
	to := domain.WalletAddress("b")

	if err := s.Mint(ctx, from, 100); err != nil {
		t.Fatal(err)
	}
	if err := s.Transfer(ctx, from, to, 60); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if bal, _ := s.Balance(ctx, from); bal != 40 {
		t.Errorf("from = %d, want 40", bal)
	}
	if bal, _ := s.Balance(ctx, to); bal != 60 {
		t.Errorf("to = %d, want 60", bal)
	}
	if err := s.Transfer(ctx, from, to, 41); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("overdraw: got %v", err)
	}
	if err := s.Transfer(ctx, from, to, 0); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("zero transfer: got %v", err)
	}
}

// TestSnapshotIsolation ensures returned records do not alias stored
// state.
func TestSnapshotIsolation(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	addr := seedCampaign(t, s, "show")

	c, _ := s.GetCampaign(ctx, addr)
	c.Title = "mutated"
	c.TopVoters = append(c.TopVoters, domain.TopVoter{Voter: "x", TotalVoted: 1})

	again, _ := s.GetCampaign(ctx, addr)
	if again.Title != "show" || len(again.TopVoters) != 0 {
		t.Fatalf("stored campaign aliased by caller copy: %+v", again)
	}
}
