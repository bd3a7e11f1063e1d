package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CommentPayload struct {
	CommentID  string `json:"comment_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

type ArticlePayload struct {
	ArticleID  string           `json:"article_id"`
	ThemeID    string           `json:"theme_id"`
	ThemeTitle string           `json:"theme_title"`
	AuthorID   string           `json:"author_id"`
	AuthorName string           `json:"author_name"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	Comments   []CommentPayload `json:"comments"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

type ArticlesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Articles []ArticlePayload `json:"articles"`
	} `json:"data"`
}

type ArticleResponse struct {
	Status string `json:"status"`
	Data   struct {
		Article ArticlePayload `json:"article"`
	} `json:"data"`
}

type CreateArticleRequest struct {
	Theme   string `json:"theme"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CreatedResponse struct {
	Status string `json:"status"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}
