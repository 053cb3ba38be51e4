package model

import "time"

// Feedback はプロジェクトへの市民フィードバック。
// 作成後は更新されない。投稿ユーザーが削除された場合は UserID が null 化され、
// フィードバック自体は公開履歴として残る。
type Feedback struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	UserID           *string   `json:"user_id"`
	UserName         string    `json:"user_name"`
	Comment          string    `json:"comment"`
	Rating           *int      `json:"rating"`
	SentimentSummary *string   `json:"sentiment_summary"`
	CreatedAt        time.Time `json:"created_at"`
}

// FeedbackInput はフィードバック投稿リクエスト
type FeedbackInput struct {
	UserName         string  `json:"user_name"`
	Comment          string  `json:"comment"`
	Rating           *int    `json:"rating"`
	SentimentSummary *string `json:"sentiment_summary"`
	UserID           *string `json:"-"`
}

// FeedbackWithProject はプロジェクトタイトル付きのフィードバック
// （管理画面・ユーザーダッシュボードの一覧用）
type FeedbackWithProject struct {
	Feedback
	ProjectTitle string `json:"projectTitle"`
}
