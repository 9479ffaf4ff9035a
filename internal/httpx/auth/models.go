package auth

// TokenResponse represents an access token response
// swagger:model TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"<JWT>"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"900"`
}

// LoginRequest represents the password login request body
// swagger:model LoginRequest
type LoginRequest struct {
	ShopDomain string `json:"shop_domain" example:"acme.myshopify.com"`
	Password   string `json:"password" example:"Secretp@ssw0rd"`
}

// RegisterRequest represents the merchant registration request body
// swagger:model RegisterRequest
type RegisterRequest struct {
	ShopDomain string `json:"shop_domain" example:"acme.myshopify.com"`
	Name       string `json:"name" example:"Acme Outfitters"`
	Password   string `json:"password" example:"Secretp@ssw0rd"`
}
