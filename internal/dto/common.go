package dto

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListParams defines query parameters for token-paginated lists.
type ListParams struct {
	Limit     int     `form:"limit,default=20" binding:"gte=0,lte=100"`
	NextToken *string `form:"nextToken"`
}

// LoginRequest carries the single-user credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
