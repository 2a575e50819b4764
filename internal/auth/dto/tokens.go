package dto

// Tokens is the signed access/refresh pair returned by every auth flow.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
