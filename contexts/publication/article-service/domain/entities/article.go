package entities

import "time"

// Article belongs to exactly one theme and one author, both fixed at
// creation. ThemeTitle and AuthorName are creation-time display snapshots so
// the aggregate stays self-contained.
type Article struct {
	ArticleID  string
	ThemeID    string
	ThemeTitle string
	AuthorID   string
	AuthorName string
	Title      string
	Content    string
	Comments   []Comment
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Comment struct {
	CommentID  string
	ArticleID  string
	AuthorID   string
	AuthorName string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
