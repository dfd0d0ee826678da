package domain

// Contestant is an option within a campaign that accumulates votes. IDs
// are zero-based ordinals assigned at creation and never reused, so
// ContestantID is always below the owning campaign's ContestantCount.
type Contestant struct {
	Address      Address
	Campaign     Address
	ContestantID int
	Name         string
	ImageURL     string
	Bio          string
	VoteCount    int64 // gross token amount voted for this contestant
}
