package domain

// Field limits enforced on campaign and contestant writes.
const (
	MaxTitleLen      = 100
	MaxURLLen        = 200
	MaxNameLen       = 50
	MaxBioLen        = 500
	MaxContestants   = 50
	MaxFeePercentage = 100
	TopVoterSlots    = 3
)

// Campaign is a time-boxed voting contest. Vote amounts are stored in
// integer token units. TotalVotes accumulates the gross (fee-inclusive)
// amount across all contestants, so it always equals the sum of the
// contestants' VoteCount fields.
type Campaign struct {
	Address         Address
	Title           string
	Creator         Identity
	StartTime       int64 // unix seconds
	EndTime         int64 // unix seconds, creator-editable
	BannerURL       string
	FeePercentage   int // 0-100, applied to every subsequent vote
	IsActive        bool
	TotalVotes      int64
	ContestantCount int
	TopVoters       []TopVoter
}

// TopVoter is one slot of a campaign's leaderboard.
type TopVoter struct {
	Voter      Identity `json:"voter"`
	TotalVoted int64    `json:"total_voted"`
}

// SplitFee divides a gross vote amount into the net share for the campaign
// vault and the fee share for the treasury. The fee rounds down, so the
// vault receives any remainder and net+fee always equals amount.
func SplitFee(amount int64, feePercentage int) (net, fee int64) {
	fee = amount * int64(feePercentage) / 100
	return amount - fee, fee
}

// InWindow reports whether the unix timestamp now falls inside the
// campaign's voting window. The activation flag is checked separately.
func (c *Campaign) InWindow(now int64) bool {
	return now >= c.StartTime && now <= c.EndTime
}

// RecordTopVoter folds a voter's running total into the leaderboard. An
// existing entry is refreshed in place; otherwise the voter is inserted if
// a slot is free or its total beats the lowest slot. Slots stay ordered by
// total descending.
func (c *Campaign) RecordTopVoter(voter Identity, totalVoted int64) {
	updated := false
	for i := range c.TopVoters {
		if c.TopVoters[i].Voter == voter {
			c.TopVoters[i].TotalVoted = totalVoted
			updated = true
			break
		}
	}
	if !updated {
		if len(c.TopVoters) < TopVoterSlots {
			c.TopVoters = append(c.TopVoters, TopVoter{Voter: voter, TotalVoted: totalVoted})
		} else {
			last := len(c.TopVoters) - 1
			if totalVoted > c.TopVoters[last].TotalVoted {
				c.TopVoters[last] = TopVoter{Voter: voter, TotalVoted: totalVoted}
			}
		}
	}
	// insertion sort; the board has at most three entries
	for i := 1; i < len(c.TopVoters); i++ {
		for j := i; j > 0 && c.TopVoters[j].TotalVoted > c.TopVoters[j-1].TotalVoted; j-- {
			c.TopVoters[j], c.TopVoters[j-1] = c.TopVoters[j-1], c.TopVoters[j]
		}
	}
}
