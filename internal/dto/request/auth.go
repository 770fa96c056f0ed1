package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	IsHost   bool   `json:"is_host"`
	ClientInfo
}

// ClientInfo is filled by the handler, never decoded from the body.
type ClientInfo struct {
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

// LoginRequest accepts either a username or an email in Username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	ClientInfo
}
