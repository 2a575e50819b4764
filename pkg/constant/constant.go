package constant

// Register status values shared by accounts and refresh-token sessions.
const (
	RegisterStatusActive  = "ACTIVE"
	RegisterStatusRemoved = "REMOVED"
)

const (
	DefaultAccessTokenExpiryMin  = 15
	DefaultRefreshTokenExpiryMin = 10080
	DefaultRecoveryKeyExpiryMin  = 60
)
