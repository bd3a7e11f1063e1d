package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestListArticlesRequiresAuthorization(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/articles", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateArticleUnknownThemeNotFound(t *testing.T) {
	server := newTestServer()
	token := registerUser(t, server, "alice")

	rr := doJSON(t, server, http.MethodPost, "/api/articles", token, map[string]string{
		"theme":   "Cobol",
		"title":   "Legacy notes",
		"content": "Nobody subscribes to this.",
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateArticleEmptyBodyBadRequest(t *testing.T) {
	server := newTestServer()
	token := registerUser(t, server, "alice")

	rr := doJSON(t, server, http.MethodPost, "/api/articles", token, map[string]string{
		"theme":   "Go",
		"title":   "",
		"content": "",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestArticleVisibilityFollowsSubscriptions(t *testing.T) {
	server := newTestServer()
	author := registerUser(t, server, "alice")
	reader := registerUser(t, server, "bob")

	if rr := doJSON(t, server, http.MethodPost, "/api/themes/subscribe/theme_go", author, nil); rr.Code != http.StatusOK {
		t.Fatalf("subscribe author: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr := doJSON(t, server, http.MethodPost, "/api/articles", author, map[string]string{
		"theme":   "Go",
		"title":   "Generics in practice",
		"content": "Constraints beat reflection.",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create article: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var listResp struct {
		Data struct {
			Articles []struct {
				ArticleID  string `json:"article_id"`
				ThemeTitle string `json:"theme_title"`
				AuthorName string `json:"author_name"`
			} `json:"articles"`
		} `json:"data"`
	}

	rr = doJSON(t, server, http.MethodGet, "/api/articles", author, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list as subscriber: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode articles response: %v", err)
	}
	if len(listResp.Data.Articles) != 1 {
		t.Fatalf("subscriber should see the article, got %s", rr.Body.String())
	}
	if listResp.Data.Articles[0].ThemeTitle != "Go" || listResp.Data.Articles[0].AuthorName != "alice" {
		t.Fatalf("unexpected article payload: %+v", listResp.Data.Articles[0])
	}

	rr = doJSON(t, server, http.MethodGet, "/api/articles", reader, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list as non-subscriber: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	listResp.Data.Articles = nil
	if err := json.Unmarshal(rr.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode articles response: %v", err)
	}
	if len(listResp.Data.Articles) != 0 {
		t.Fatalf("non-subscriber should see nothing, got %s", rr.Body.String())
	}
}

func TestGetArticleSkipsSubscriptionCheck(t *testing.T) {
	server := newTestServer()
	author := registerUser(t, server, "alice")
	reader := registerUser(t, server, "bob")

	rr := doJSON(t, server, http.MethodPost, "/api/articles", author, map[string]string{
		"theme":   "Go",
		"title":   "Channels",
		"content": "Share memory by communicating.",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create article: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created response: %v", err)
	}

	// Direct reads only require authentication, never membership.
	rr = doJSON(t, server, http.MethodGet, "/api/articles/"+created.Data.ID, reader, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get as non-subscriber: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateCommentAppendsToArticle(t *testing.T) {
	server := newTestServer()
	author := registerUser(t, server, "alice")
	commenter := registerUser(t, server, "bob")

	rr := doJSON(t, server, http.MethodPost, "/api/articles", author, map[string]string{
		"theme":   "Go",
		"title":   "Error wrapping",
		"content": "Use %w and errors.Is.",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create article: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created response: %v", err)
	}

	rr = doJSON(t, server, http.MethodPost, "/api/articles/"+created.Data.ID+"/comments", commenter, map[string]string{
		"content": "Sentinel errors pair well with this.",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create comment: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/articles/"+created.Data.ID, author, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get article: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var article struct {
		Data struct {
			Article struct {
				Comments []struct {
					AuthorName string `json:"author_name"`
					Content    string `json:"content"`
				} `json:"comments"`
			} `json:"article"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &article); err != nil {
		t.Fatalf("decode article response: %v", err)
	}
	if len(article.Data.Article.Comments) != 1 {
		t.Fatalf("expected one comment, got %s", rr.Body.String())
	}
	if article.Data.Article.Comments[0].AuthorName != "bob" {
		t.Fatalf("unexpected comment author: %+v", article.Data.Article.Comments[0])
	}
}

func TestCreateCommentUnknownArticleNotFound(t *testing.T) {
	server := newTestServer()
	token := registerUser(t, server, "alice")

	rr := doJSON(t, server, http.MethodPost, "/api/articles/article_missing/comments", token, map[string]string{
		"content": "Lost comment.",
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
