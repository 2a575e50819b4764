package dto

// ClientInfo is the request fingerprint recorded on each session.
type ClientInfo struct {
	IP           string `json:"-"`
	Platform     string `json:"-"`
	BrowserBrand string `json:"-"`
	UserAgent    string `json:"-"`
}
