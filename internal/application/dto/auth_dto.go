package dto

// LoginRequest entrada de login. Llega como form body (OAuth2 password flow):
// username puede ser el username o el email del usuario.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthUser resumen del usuario autenticado dentro de TokenResponse.
type AuthUser struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Role     string  `json:"role"`
}

// TokenResponse salida de login y refresh: par de tokens + usuario.
type TokenResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	User         AuthUser `json:"user"`
}

// RefreshRequest entrada para renovar el access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// PasswordChangeRequest entrada para cambiar la contraseña del usuario actual.
type PasswordChangeRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
