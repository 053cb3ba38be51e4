package model

import "time"

// NewsArticle はニュース記事のビューモデル
type NewsArticle struct {
	ID            string        `json:"id"`
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	Summary       string        `json:"summary"`
	ImageURL      *string       `json:"imageUrl"`
	DataAiHint    *string       `json:"dataAiHint"`
	Category      string        `json:"category"`
	PublishedDate time.Time     `json:"publishedDate"`
	Content       *string       `json:"content"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Comments      []NewsComment `json:"comments"`
	LikeCount     int           `json:"likeCount"`
	IsLikedByUser bool          `json:"isLikedByUser"`
}

// CommentAuthor はコメント投稿者の公開プロフィール
type CommentAuthor struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// NewsComment はニュース記事へのコメント
type NewsComment struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	User      CommentAuthor `json:"user"`
}

// NewsArticleInput はニュース記事作成リクエスト
type NewsArticleInput struct {
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	ImageURL      *string   `json:"imageUrl"`
	DataAiHint    *string   `json:"dataAiHint"`
	Category      string    `json:"category"`
	PublishedDate time.Time `json:"publishedDate"`
	Content       *string   `json:"content"`
}

// NewsArticlePatch はニュース記事部分更新リクエスト。
// 空文字列の ImageURL / DataAiHint は null としてクリアされる。
type NewsArticlePatch struct {
	Slug          *string              `json:"slug"`
	Title         *string              `json:"title"`
	Summary       *string              `json:"summary"`
	ImageURL      Optional[string]     `json:"imageUrl"`
	DataAiHint    Optional[string]     `json:"dataAiHint"`
	Category      *string              `json:"category"`
	PublishedDate *time.Time           `json:"publishedDate"`
	Content       Optional[string]     `json:"content"`
}
