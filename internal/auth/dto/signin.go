package dto

type SigninInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
