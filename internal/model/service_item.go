package model

import "time"

// ServiceItem は行政サービスのビューモデル
type ServiceItem struct {
	ID         string    `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	IconName   *string   `json:"iconName"`
	Link       *string   `json:"link"`
	Category   *string   `json:"category"`
	ImageURL   *string   `json:"imageUrl"`
	DataAiHint *string   `json:"dataAiHint"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ServiceItemInput はサービス作成リクエスト
type ServiceItemInput struct {
	Slug       string  `json:"slug"`
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	IconName   *string `json:"iconName"`
	Link       *string `json:"link"`
	Category   *string `json:"category"`
	ImageURL   *string `json:"imageUrl"`
	DataAiHint *string `json:"dataAiHint"`
}

// ServiceItemPatch はサービス部分更新リクエスト
type ServiceItemPatch struct {
	Slug       *string          `json:"slug"`
	Title      *string          `json:"title"`
	Summary    *string          `json:"summary"`
	IconName   Optional[string] `json:"iconName"`
	Link       Optional[string] `json:"link"`
	Category   Optional[string] `json:"category"`
	ImageURL   Optional[string] `json:"imageUrl"`
	DataAiHint Optional[string] `json:"dataAiHint"`
}
