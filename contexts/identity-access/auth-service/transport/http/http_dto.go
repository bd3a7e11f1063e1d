package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse carries the bearer token plus the caller's id; clients
// match the id against theme subscriber lists.
type SessionResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	} `json:"data"`
}

type CredentialsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"data"`
}

type UpdateCredentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdatedCredentialsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Token    string `json:"token"`
		UserID   string `json:"user_id"`
	} `json:"data"`
}
