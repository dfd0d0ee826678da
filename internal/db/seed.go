package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
)

// Seed inserts demo data through the usecase: a couple of open campaigns
// with contestants, funded demo wallets and a few cast votes. It is safe
// to run against an empty store only; duplicate-campaign errors on rerun
// are returned to the caller.
func Seed(ctx context.Context, svc port.VoteUseCase, ledger port.TokenLedger) error {
	creator := domain.Identity("demo-creator-" + uuid.NewString())
	now := time.Now().Unix()

	campaigns := []port.CreateCampaignReq{
		{
			Title:         "Rising Star Finals",
			StartTime:     now - 3600,
			EndTime:       now + 7*24*3600,
			BannerURL:     "https://cdn.example.com/banners/" + uuid.NewString() + ".png",
			FeePercentage: 5,
			Creator:       creator,
		},
		{
			Title:         "Dance Battle Season 2",
			StartTime:     now - 3600,
			EndTime:       now + 14*24*3600,
			BannerURL:     "https://cdn.example.com/banners/" + uuid.NewString() + ".png",
			FeePercentage: 10,
			Creator:       creator,
		},
	}
	names := [][]string{
		{"Aria Monroe", "Leo Castellanos", "June Park"},
		{"Crew Atlas", "Vertigo Collective"},
	}

	for i, req := range campaigns {
		if _, err := svc.CreateCampaign(ctx, req); err != nil {
			return err
		}
		for j, name := range names[i] {
			_, err := svc.AddContestant(ctx, req.Title, port.AddContestantReq{
				Name:     name,
				ImageURL: fmt.Sprintf("https://cdn.example.com/contestants/%d-%d.jpg", i, j),
				Bio:      fmt.Sprintf("Demo contestant %d of %s", j, req.Title),
				Caller:   creator,
			})
			if err != nil {
				return err
			}
		}

		// fund a few demo voters and let them vote
		for v := 0; v < 3; v++ {
			voter := domain.Identity("demo-voter-" + uuid.NewString())
			if err := ledger.Mint(ctx, domain.WalletAddress(voter), 1_000); err != nil {
				return err
			}
			_, err := svc.CastVote(ctx, req.Title, port.CastVoteReq{
				ContestantID: v % len(names[i]),
				Amount:       int64(100 * (v + 1)),
				Voter:        voter,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
