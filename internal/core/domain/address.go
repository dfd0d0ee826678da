package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Address is the derived storage key of a record or token account. Every
// entity lives at a deterministic address computed from a domain tag and
// its natural keys, so lookups never need a secondary index.
type Address string

// Identity is an opaque, already-authenticated caller identity (a wallet
// address verified by the surrounding platform).
type Identity string

// Derivation tags. Distinct tags keep the key spaces of the entity types
// disjoint even when their natural keys collide.
const (
	tagCampaign   = "campaign"
	tagContestant = "contestant"
	tagVoter      = "voter"
	tagVault      = "vault"
	tagTreasury   = "treasury"
	tagWallet     = "wallet"
)

// Derive computes the address for a domain tag and its key parts. The
// result is stable across processes and collision-free for distinct part
// tuples within a tag: parts are length-prefixed before hashing so that
// ("ab","c") and ("a","bc") hash differently.
func Derive(tag string, parts ...string) Address {
	h := sha256.New()
	h.Write([]byte(tag))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(len(p))))
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return Address(hex.EncodeToString(h.Sum(nil)))
}

// CampaignAddress returns the address of the campaign with the given title.
// Titles are globally unique by construction.
func CampaignAddress(title string) Address {
	return Derive(tagCampaign, title)
}

// ContestantAddress returns the address of a contestant ordinal within a
// campaign.
func ContestantAddress(campaign Address, contestantID int) Address {
	return Derive(tagContestant, string(campaign), strconv.Itoa(contestantID))
}

// VoterRecordAddress returns the address of the per-campaign vote marker
// for an identity.
func VoterRecordAddress(campaign Address, voter Identity) Address {
	return Derive(tagVoter, string(campaign), string(voter))
}

// VaultAddress returns the pooled token account of a campaign, where the
// net (after fee) vote amounts accumulate.
func VaultAddress(campaign Address) Address {
	return Derive(tagVault, string(campaign))
}

// TreasuryAddress returns the single platform-wide token account that
// accumulates fees across all campaigns.
func TreasuryAddress() Address {
	return Derive(tagTreasury)
}

// WalletAddress returns the token account owned by an external identity.
func WalletAddress(id Identity) Address {
	return Derive(tagWallet, string(id))
}
