package dto

// SignupRequest entrada para registro de pasajeros y administradores.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminResponse salida de un administrador, incluye su API key vigente.
type AdminResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	APIKey string `json:"apikey"`
}

// APIKeyResponse salida de la rotación de API key.
type APIKeyResponse struct {
	APIKey string `json:"apikey"`
	Name   string `json:"name"`
}
