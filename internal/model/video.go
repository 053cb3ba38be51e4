package model

import "time"

// Video は動画のビューモデル。
// 単独エンティティとしても、プロジェクトの videos JSON 列の要素としても使われる。
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	DataAiHint   *string   `json:"dataAiHint,omitempty"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// VideoInput は動画作成リクエスト
type VideoInput struct {
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	DataAiHint   *string `json:"dataAiHint"`
	Description  *string `json:"description"`
}

// VideoPatch は動画部分更新リクエスト
type VideoPatch struct {
	Title        *string          `json:"title"`
	URL          *string          `json:"url"`
	ThumbnailURL Optional[string] `json:"thumbnailUrl"`
	DataAiHint   Optional[string] `json:"dataAiHint"`
	Description  Optional[string] `json:"description"`
}
