package domain

// VoterRecord marks an identity's vote within a campaign. It is created on
// the first successful vote for the (campaign, voter) pair and never
// deleted; its existence with HasVoted set blocks any further vote.
//
// TotalVoted keeps accumulating semantics for forward compatibility even
// though the vote-once rule means it currently equals the single recorded
// amount.
type VoterRecord struct {
	Address    Address
	Campaign   Address
	Voter      Identity
	HasVoted   bool
	TotalVoted int64
}
