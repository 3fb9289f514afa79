package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"operator"`
	Password string `json:"password" example:"secret"`
	Referrer *int   `json:"referrer,omitempty" example:"42"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"operator"`
	Password string `json:"password" example:"secret"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}
