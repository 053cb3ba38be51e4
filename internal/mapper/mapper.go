package mapper

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/nigeriagovhub/backend/internal/catalog"
	"github.com/nigeriagovhub/backend/internal/model"
)

// decodeJSONArray は JSON テキスト列を防御的にデコードする。
// 配列以外の値（空文字列・null・オブジェクト・壊れた JSON）は空スライスになる。
func decodeJSONArray[T any](raw []byte) []T {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

// optionalDate はオプショナル日付をマッピングする。欠損・ゼロ値は「値なし」。
func optionalDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := *t
	return &v
}

// resolveMinistry は外部キーを参照カタログで解決する。
// 未知の ID は生 ID を ID・表示名の両方に使った劣化プレースホルダを返す（失敗しない）。
func resolveMinistry(id *string) model.Ministry {
	if id == nil || *id == "" {
		return model.Ministry{ID: "unknown_ministry", Name: "Unknown Ministry"}
	}
	if m, ok := catalog.MinistryByID(*id); ok {
		return m
	}
	return model.Ministry{ID: *id, Name: *id}
}

func resolveState(id *string) model.State {
	if id == nil || *id == "" {
		return model.State{ID: "unknown_state", Name: "Unknown State"}
	}
	if s, ok := catalog.StateByID(*id); ok {
		return s
	}
	return model.State{ID: *id, Name: *id}
}

// Project は ProjectRecord と関連レコードからビューモデルを構築する。
// 必須日付（start_date / last_updated_at）が不正な場合のみ *ValidationError で失敗する。
func Project(rec ProjectRecord, tagNames []string, feedback []*model.Feedback) (*model.Project, error) {
	if rec.StartDate.IsZero() {
		return nil, &ValidationError{Entity: "project", ID: rec.ID, Field: "start_date"}
	}
	if rec.LastUpdatedAt.IsZero() {
		return nil, &ValidationError{Entity: "project", ID: rec.ID, Field: "last_updated_at"}
	}

	if tagNames == nil {
		tagNames = []string{}
	}
	if feedback == nil {
		feedback = []*model.Feedback{}
	}

	return &model.Project{
		ID:              rec.ID,
		Title:           rec.Title,
		Subtitle:        rec.Subtitle,
		Ministry:        resolveMinistry(rec.MinistryID),
		State:           resolveState(rec.StateID),
		Status:          model.ParseProjectStatus(rec.Status),
		StartDate:       rec.StartDate,
		ExpectedEndDate: optionalDate(rec.ExpectedEndDate),
		ActualEndDate:   optionalDate(rec.ActualEndDate),
		Description:     rec.Description,
		Images:          decodeJSONArray[model.ProjectImage](rec.Images),
		Videos:          decodeJSONArray[model.Video](rec.Videos),
		ImpactStats:     decodeJSONArray[model.ImpactStat](rec.ImpactStats),
		Budget:          rec.Budget,
		Expenditure:     rec.Expenditure,
		Tags:            tagNames,
		LastUpdatedAt:   rec.LastUpdatedAt,
		CreatedAt:       rec.CreatedAt,
		Feedback:        feedback,
		MinistryID:      rec.MinistryID,
		StateID:         rec.StateID,
	}, nil
}

// FeedbackFromRecord は FeedbackRecord からビューモデルを構築する。
func FeedbackFromRecord(rec FeedbackRecord) *model.Feedback {
	return &model.Feedback{
		ID:               rec.ID,
		ProjectID:        rec.ProjectID,
		UserID:           rec.UserID,
		UserName:         rec.UserName,
		Comment:          rec.Comment,
		Rating:           rec.Rating,
		SentimentSummary: rec.SentimentSummary,
		CreatedAt:        rec.CreatedAt,
	}
}

// UserFromRecord は UserRecord から公開ビューモデルを構築する。
// パスワードハッシュは含まれない。ロールは未知・欠損時に user へフォールバックする。
func UserFromRecord(rec UserRecord) *model.User {
	role := model.RoleUser
	if rec.Role != nil {
		role = model.ParseUserRole(*rec.Role)
	}
	return &model.User{
		ID:            rec.ID,
		Name:          rec.Name,
		Email:         rec.Email,
		EmailVerified: rec.EmailVerified,
		Image:         rec.Image,
		Role:          role,
		CreatedAt:     rec.CreatedAt,
	}
}

// FullUserFromRecord は認証フロー用にパスワードハッシュ付きのレコードを構築する。
func FullUserFromRecord(rec UserRecord) *model.FullUser {
	return &model.FullUser{
		User:         *UserFromRecord(rec),
		PasswordHash: rec.PasswordHash,
	}
}

// NewsFromRecord は NewsArticleRecord からビューモデルを構築する。
// コメント・いいね数は呼び出し側が設定する（一覧では空のまま）。
func NewsFromRecord(rec NewsArticleRecord) *model.NewsArticle {
	return &model.NewsArticle{
		ID:            rec.ID,
		Slug:          rec.Slug,
		Title:         rec.Title,
		Summary:       rec.Summary,
		ImageURL:      rec.ImageURL,
		DataAiHint:    rec.DataAiHint,
		Category:      rec.Category,
		PublishedDate: rec.PublishedDate,
		Content:       rec.Content,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
		Comments:      []model.NewsComment{},
	}
}

// ServiceFromRecord は ServiceRecord からビューモデルを構築する。
func ServiceFromRecord(rec ServiceRecord) *model.ServiceItem {
	return &model.ServiceItem{
		ID:         rec.ID,
		Slug:       rec.Slug,
		Title:      rec.Title,
		Summary:    rec.Summary,
		IconName:   rec.IconName,
		Link:       rec.Link,
		Category:   rec.Category,
		ImageURL:   rec.ImageURL,
		DataAiHint: rec.DataAiHint,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}

// VideoFromRecord は VideoRecord からビューモデルを構築する。
func VideoFromRecord(rec VideoRecord) *model.Video {
	return &model.Video{
		ID:           rec.ID,
		Title:        rec.Title,
		URL:          rec.URL,
		ThumbnailURL: rec.ThumbnailURL,
		DataAiHint:   rec.DataAiHint,
		Description:  rec.Description,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

// SiteSettingsFromRecord は SiteSettingsRecord からビューモデルを構築する。
func SiteSettingsFromRecord(rec SiteSettingsRecord) *model.SiteSettings {
	return &model.SiteSettings{
		ID:              rec.ID,
		SiteName:        rec.SiteName,
		MaintenanceMode: rec.MaintenanceMode,
		ContactEmail:    rec.ContactEmail,
		FooterMessage:   rec.FooterMessage,
		UpdatedAt:       rec.UpdatedAt,
	}
}
