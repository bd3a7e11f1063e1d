package unit

import (
	"context"
	"errors"
	"testing"

	authservice "mdd/contexts/identity-access/auth-service"
	authhttp "mdd/contexts/identity-access/auth-service/transport/http"
	articleservice "mdd/contexts/publication/article-service"
	domainerrors "mdd/contexts/publication/article-service/domain/errors"
	articlehttp "mdd/contexts/publication/article-service/transport/http"
	themeservice "mdd/contexts/publication/theme-service"
)

type articleFixture struct {
	auth     authservice.Module
	themes   themeservice.Module
	articles articleservice.Module
}

func newArticleFixture() articleFixture {
	auth := authservice.NewInMemoryModule(nil)
	themes := themeservice.NewInMemoryModule(auth.Service, nil)
	articles := articleservice.NewInMemoryModule(auth.Service, themes.Service, nil)
	return articleFixture{auth: auth, themes: themes, articles: articles}
}

func (f articleFixture) register(t *testing.T, name string, email string) string {
	t.Helper()
	session, err := f.auth.Handler.RegisterHandler(context.Background(), authhttp.RegisterRequest{
		Username: name,
		Email:    email,
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("register %s failed: %v", name, err)
	}
	return session.Data.Token
}

func TestArticleServiceVisibilityGatedBySubscription(t *testing.T) {
	fixture := newArticleFixture()
	ctx := context.Background()

	aliceToken := fixture.register(t, "alice", "alice@example.com")
	bobToken := fixture.register(t, "bob", "bob@example.com")

	if _, err := fixture.themes.Handler.SubscribeHandler(ctx, aliceToken, "theme_go"); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	created, err := fixture.articles.Handler.CreateArticleHandler(ctx, aliceToken, articlehttp.CreateArticleRequest{
		Theme:   "Go",
		Title:   "Generics in practice",
		Content: "Constraints beat reflection.",
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatalf("create article returned empty id")
	}

	visible, err := fixture.articles.Handler.ListArticlesHandler(ctx, aliceToken)
	if err != nil {
		t.Fatalf("list for subscriber failed: %v", err)
	}
	if len(visible.Data.Articles) != 1 || visible.Data.Articles[0].ArticleID != created.Data.ID {
		t.Fatalf("subscriber should see the article, got %+v", visible.Data.Articles)
	}
	if visible.Data.Articles[0].ThemeTitle != "Go" || visible.Data.Articles[0].AuthorName != "alice" {
		t.Fatalf("unexpected display snapshot: %+v", visible.Data.Articles[0])
	}

	hidden, err := fixture.articles.Handler.ListArticlesHandler(ctx, bobToken)
	if err != nil {
		t.Fatalf("list for non-subscriber failed: %v", err)
	}
	if len(hidden.Data.Articles) != 0 {
		t.Fatalf("non-subscriber should see nothing, got %+v", hidden.Data.Articles)
	}
}

func TestArticleServiceCreateDoesNotRequireSubscription(t *testing.T) {
	fixture := newArticleFixture()
	ctx := context.Background()

	token := fixture.register(t, "alice", "alice@example.com")

	// Authoring into a theme the author never subscribed to is allowed; the
	// author simply will not see their own article in the feed.
	created, err := fixture.articles.Handler.CreateArticleHandler(ctx, token, articlehttp.CreateArticleRequest{
		Theme:   "Java",
		Title:   "Records",
		Content: "Value carriers without ceremony.",
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}

	feed, err := fixture.articles.Handler.ListArticlesHandler(ctx, token)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(feed.Data.Articles) != 0 {
		t.Fatalf("unsubscribed author saw own article in feed: %+v", feed.Data.Articles)
	}

	// Direct access still works.
	if _, err := fixture.articles.Handler.GetArticleHandler(ctx, token, created.Data.ID); err != nil {
		t.Fatalf("get article failed: %v", err)
	}
}

func TestArticleServiceCreateUnknownTheme(t *testing.T) {
	fixture := newArticleFixture()
	token := fixture.register(t, "alice", "alice@example.com")

	_, err := fixture.articles.Handler.CreateArticleHandler(context.Background(), token, articlehttp.CreateArticleRequest{
		Theme:   "Cobol",
		Title:   "Legacy notes",
		Content: "No catalog entry for this one.",
	})
	if !errors.Is(err, domainerrors.ErrThemeNotFound) {
		t.Fatalf("expected theme not found, got %v", err)
	}
}

func TestArticleServiceCreateValidatesBody(t *testing.T) {
	fixture := newArticleFixture()
	token := fixture.register(t, "alice", "alice@example.com")

	_, err := fixture.articles.Handler.CreateArticleHandler(context.Background(), token, articlehttp.CreateArticleRequest{
		Theme:   "Go",
		Title:   "   ",
		Content: "",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestArticleServiceCommentFlow(t *testing.T) {
	fixture := newArticleFixture()
	ctx := context.Background()

	aliceToken := fixture.register(t, "alice", "alice@example.com")
	bobToken := fixture.register(t, "bob", "bob@example.com")

	created, err := fixture.articles.Handler.CreateArticleHandler(ctx, aliceToken, articlehttp.CreateArticleRequest{
		Theme:   "Go",
		Title:   "Error wrapping",
		Content: "Use %w and errors.Is.",
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}

	before, err := fixture.articles.Handler.GetArticleHandler(ctx, aliceToken, created.Data.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}

	comment, err := fixture.articles.Handler.CreateCommentHandler(ctx, bobToken, created.Data.ID, articlehttp.CreateCommentRequest{
		Content: "Sentinel errors pair well with this.",
	})
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if comment.Data.ID == "" {
		t.Fatalf("create comment returned empty id")
	}

	after, err := fixture.articles.Handler.GetArticleHandler(ctx, aliceToken, created.Data.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if len(after.Data.Article.Comments) != 1 {
		t.Fatalf("expected one comment, got %+v", after.Data.Article.Comments)
	}
	if after.Data.Article.Comments[0].AuthorName != "bob" {
		t.Fatalf("unexpected comment author: %+v", after.Data.Article.Comments[0])
	}
	if after.Data.Article.UpdatedAt < before.Data.Article.UpdatedAt {
		t.Fatalf("comment should move the article's updated timestamp forward")
	}
	if after.Data.Article.CreatedAt != before.Data.Article.CreatedAt {
		t.Fatalf("comment must not touch the article's created timestamp")
	}
}

func TestArticleServiceCommentOnUnknownArticle(t *testing.T) {
	fixture := newArticleFixture()
	token := fixture.register(t, "alice", "alice@example.com")

	_, err := fixture.articles.Handler.CreateCommentHandler(context.Background(), token, "article_missing", articlehttp.CreateCommentRequest{
		Content: "Lost comment.",
	})
	if !errors.Is(err, domainerrors.ErrArticleNotFound) {
		t.Fatalf("expected article not found, got %v", err)
	}
}
