package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ThemePayload struct {
	ThemeID     string   `json:"theme_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subscribers []string `json:"subscribers"`
	UpdatedAt   string   `json:"updated_at"`
}

type ThemesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Themes []ThemePayload `json:"themes"`
	} `json:"data"`
}

type MembershipResponse struct {
	Status string `json:"status"`
}
