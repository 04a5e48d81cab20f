package dto

// LoginRequest credenciales del back-office (POST /auth/login).
type LoginRequest struct {
	LoginID  string `json:"loginId" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=100"`
}

// LoginResult respuesta del API remoto al iniciar sesión.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
}

// LoginResponse salida del gateway: token más la sesión decodificada.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}
