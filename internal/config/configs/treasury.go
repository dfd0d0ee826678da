package configs

// Treasury configures the platform fee treasury. The withdraw authority is
// the single identity allowed to drain accumulated fees; it is independent
// of any campaign creator and should be rotated through the environment,
// never hard-coded.
type Treasury struct {
	// WithdrawAuthority is the opaque identity (wallet address) permitted
	// to call the fee withdrawal operation.
	WithdrawAuthority string `env:"WITHDRAW_AUTHORITY" envDefault:"treasury-admin"`
}
