package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"mdd/contexts/publication/article-service/application"
	"mdd/contexts/publication/article-service/domain/entities"
	httptransport "mdd/contexts/publication/article-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListArticlesHandler(ctx context.Context, token string) (httptransport.ArticlesResponse, error) {
	articles, err := h.Service.ListArticles(ctx, token)
	if err != nil {
		return httptransport.ArticlesResponse{}, err
	}
	resp := httptransport.ArticlesResponse{Status: "success"}
	resp.Data.Articles = make([]httptransport.ArticlePayload, 0, len(articles))
	for _, article := range articles {
		resp.Data.Articles = append(resp.Data.Articles, articlePayload(article))
	}
	return resp, nil
}

func (h Handler) GetArticleHandler(ctx context.Context, token string, articleID string) (httptransport.ArticleResponse, error) {
	article, err := h.Service.GetArticle(ctx, token, articleID)
	if err != nil {
		return httptransport.ArticleResponse{}, err
	}
	resp := httptransport.ArticleResponse{Status: "success"}
	resp.Data.Article = articlePayload(article)
	return resp, nil
}

func (h Handler) CreateArticleHandler(ctx context.Context, token string, req httptransport.CreateArticleRequest) (httptransport.CreatedResponse, error) {
	articleID, err := h.Service.CreateArticle(ctx, token, req.Theme, req.Title, req.Content)
	if err != nil {
		return httptransport.CreatedResponse{}, err
	}
	resp := httptransport.CreatedResponse{Status: "success"}
	resp.Data.ID = articleID
	return resp, nil
}

func (h Handler) CreateCommentHandler(ctx context.Context, token string, articleID string, req httptransport.CreateCommentRequest) (httptransport.CreatedResponse, error) {
	commentID, err := h.Service.CreateComment(ctx, token, articleID, req.Content)
	if err != nil {
		return httptransport.CreatedResponse{}, err
	}
	resp := httptransport.CreatedResponse{Status: "success"}
	resp.Data.ID = commentID
	return resp, nil
}

func articlePayload(article entities.Article) httptransport.ArticlePayload {
	comments := make([]httptransport.CommentPayload, 0, len(article.Comments))
	for _, comment := range article.Comments {
		comments = append(comments, httptransport.CommentPayload{
			CommentID:  comment.CommentID,
			AuthorID:   comment.AuthorID,
			AuthorName: comment.AuthorName,
			Content:    comment.Content,
			CreatedAt:  comment.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return httptransport.ArticlePayload{
		ArticleID:  article.ArticleID,
		ThemeID:    article.ThemeID,
		ThemeTitle: article.ThemeTitle,
		AuthorID:   article.AuthorID,
		AuthorName: article.AuthorName,
		Title:      article.Title,
		Content:    article.Content,
		Comments:   comments,
		CreatedAt:  article.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  article.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
