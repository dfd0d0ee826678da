package domain

import "errors"

// Protocol failures. Every operation returns one of these sentinels (or
// wraps one) so callers can branch with errors.Is and surface the code
// verbatim. No operation ever fails silently or leaves partial state.
var (
	// Validation: malformed input, detected before any mutation.
	ErrInvalidTimeRange     = errors.New("start time must be before end time")
	ErrEndTimeInPast        = errors.New("end time cannot be in the past")
	ErrInvalidFeePercentage = errors.New("fee percentage must be between 0 and 100")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrTitleTooLong         = errors.New("title must be 1-100 characters")
	ErrURLTooLong           = errors.New("url exceeds 200 characters")
	ErrInvalidName          = errors.New("name must be 1-50 characters")
	ErrBioTooLong           = errors.New("bio exceeds 500 characters")
	ErrTooManyContestants   = errors.New("campaign contestant limit reached")

	// Authorization: caller identity does not match the required authority.
	ErrUnauthorized = errors.New("unauthorized")

	// State conflict: the requested transition conflicts with existing state.
	ErrDuplicateCampaign = errors.New("campaign already exists")
	ErrAlreadyVoted      = errors.New("already voted in this campaign")

	// Resource: an external balance precondition is unmet.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Window: temporal or activation precondition unmet.
	ErrCampaignNotActiveOrEnded = errors.New("campaign is not active or the voting period has ended")

	// Lookup failures. Token accounts have no not-found case: an unknown
	// account reads as a zero balance.
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrContestantNotFound  = errors.New("contestant not found")
	ErrVoterRecordNotFound = errors.New("voter record not found")
)

// ErrorCode returns the wire name of a protocol failure, or "Internal" for
// anything outside the taxonomy. UI layers surface this string verbatim.
func ErrorCode(err error) string {
	for _, e := range []struct {
		err  error
		code string
	}{
		{ErrInvalidTimeRange, "InvalidTimeRange"},
		{ErrEndTimeInPast, "EndTimeInPast"},
		{ErrInvalidFeePercentage, "InvalidFeePercentage"},
		{ErrInvalidAmount, "InvalidAmount"},
		{ErrTitleTooLong, "TitleTooLong"},
		{ErrURLTooLong, "URLTooLong"},
		{ErrInvalidName, "InvalidName"},
		{ErrBioTooLong, "BioTooLong"},
		{ErrTooManyContestants, "TooManyContestants"},
		{ErrUnauthorized, "Unauthorized"},
		{ErrDuplicateCampaign, "DuplicateCampaign"},
		{ErrAlreadyVoted, "AlreadyVoted"},
		{ErrInsufficientFunds, "InsufficientFunds"},
		{ErrCampaignNotActiveOrEnded, "CampaignNotActiveOrEnded"},
		{ErrCampaignNotFound, "CampaignNotFound"},
		{ErrContestantNotFound, "ContestantNotFound"},
		{ErrVoterRecordNotFound, "VoterRecordNotFound"},
	} {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return "Internal"
}
