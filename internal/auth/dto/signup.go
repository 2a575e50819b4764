package dto

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Cpf      string `json:"cpf,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}
