package dto

// LoginRequest carries portal credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"2024001"`
	Password string `json:"password" binding:"required" example:"pass123"`
}

// RefreshTokenRequest carries a refresh token to rotate.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the given refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is returned on successful login/refresh.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}
