// Package mapper は永続化レコードをアプリケーションのビューモデルへ変換する。
// 変換は純粋関数であり、永続化は一切行わない。
package mapper

import "time"

// ProjectRecord は project テーブルの生の 1 行。
// images / videos / impact_stats は JSON テキスト列で、配列以外の値が
// 入っている可能性がある（マッピング時に防御的にデコードする）。
type ProjectRecord struct {
	ID              string
	Title           string
	Subtitle        string
	MinistryID      *string
	StateID         *string
	Status          string
	StartDate       time.Time
	ExpectedEndDate *time.Time
	ActualEndDate   *time.Time
	Description     string
	Images          []byte
	Videos          []byte
	ImpactStats     []byte
	Budget          *float64
	Expenditure     *float64
	LastUpdatedAt   time.Time
	CreatedAt       time.Time
}

// FeedbackRecord は feedback テーブルの生の 1 行
type FeedbackRecord struct {
	ID               string
	ProjectID        string
	UserID           *string
	UserName         string
	Comment          string
	Rating           *int
	SentimentSummary *string
	CreatedAt        time.Time
}

// UserRecord は users テーブルの生の 1 行
type UserRecord struct {
	ID            string
	Name          *string
	Email         *string
	EmailVerified *time.Time
	Image         *string
	Role          *string
	PasswordHash  *string
	CreatedAt     *time.Time
}

// NewsArticleRecord は newsarticle テーブルの生の 1 行
type NewsArticleRecord struct {
	ID            string
	Slug          string
	Title         string
	Summary       string
	ImageURL      *string
	DataAiHint    *string
	Category      string
	PublishedDate time.Time
	Content       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ServiceRecord は service テーブルの生の 1 行
type ServiceRecord struct {
	ID         string
	Slug       string
	Title      string
	Summary    string
	IconName   *string
	Link       *string
	Category   *string
	ImageURL   *string
	DataAiHint *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VideoRecord は video テーブルの生の 1 行
type VideoRecord struct {
	ID           string
	Title        string
	URL          string
	ThumbnailURL *string
	DataAiHint   *string
	Description  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SiteSettingsRecord は sitesetting テーブルの生の 1 行
type SiteSettingsRecord struct {
	ID              string
	SiteName        *string
	MaintenanceMode bool
	ContactEmail    *string
	FooterMessage   *string
	UpdatedAt       time.Time
}
