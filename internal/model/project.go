package model

import "time"

// ProjectStatus はプロジェクトの進行状態
type ProjectStatus string

const (
	StatusOngoing   ProjectStatus = "Ongoing"
	StatusCompleted ProjectStatus = "Completed"
	StatusPlanned   ProjectStatus = "Planned"
	StatusOnHold    ProjectStatus = "On Hold"
	StatusUnknown   ProjectStatus = "Unknown"
)

// ParseProjectStatus は永続化された文字列を ProjectStatus に変換する。
// 未知の値は StatusUnknown にフォールバックする（失敗しない）。
func ParseProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(s) {
	case StatusOngoing, StatusCompleted, StatusPlanned, StatusOnHold:
		return ProjectStatus(s)
	default:
		return StatusUnknown
	}
}

// Ministry は省庁の参照エンティティ
type Ministry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// State は州の参照エンティティ
type State struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectImage はプロジェクト画像の記述子
type ProjectImage struct {
	URL        string `json:"url"`
	Alt        string `json:"alt"`
	DataAiHint string `json:"dataAiHint,omitempty"`
}

// ImpactStat はプロジェクトの成果指標
type ImpactStat struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	IconName string `json:"iconName,omitempty"`
}

// Project は公共事業プロジェクトのビューモデル
type Project struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Subtitle        string         `json:"subtitle"`
	Ministry        Ministry       `json:"ministry"`
	State           State          `json:"state"`
	Status          ProjectStatus  `json:"status"`
	StartDate       time.Time      `json:"startDate"`
	ExpectedEndDate *time.Time     `json:"expectedEndDate,omitempty"`
	ActualEndDate   *time.Time     `json:"actualEndDate,omitempty"`
	Description     string         `json:"description"`
	Images          []ProjectImage `json:"images"`
	Videos          []Video        `json:"videos"`
	ImpactStats     []ImpactStat   `json:"impactStats"`
	Budget          *float64       `json:"budget,omitempty"`
	Expenditure     *float64       `json:"expenditure,omitempty"`
	Tags            []string       `json:"tags"`
	LastUpdatedAt   time.Time      `json:"lastUpdatedAt"`
	CreatedAt       time.Time      `json:"createdAt"`
	Feedback        []*Feedback    `json:"feedback"`

	// 参照カタログで解決する前の生の外部キー
	MinistryID *string `json:"ministry_id,omitempty"`
	StateID    *string `json:"state_id,omitempty"`
}

// ProjectInput はプロジェクト作成リクエスト
type ProjectInput struct {
	Title           string        `json:"title"`
	Subtitle        string        `json:"subtitle"`
	MinistryID      *string       `json:"ministry_id"`
	StateID         *string       `json:"state_id"`
	Status          ProjectStatus `json:"status"`
	StartDate       time.Time     `json:"start_date"`
	ExpectedEndDate *time.Time    `json:"expected_end_date"`
	Description     string        `json:"description"`
	Budget          *float64      `json:"budget"`
	Expenditure     *float64      `json:"expenditure"`
	Tags            []string      `json:"tags"`
}

// ProjectPatch はプロジェクト部分更新リクエスト。
// 未指定フィールドは保存値を変えず、明示的 null は nullable フィールドをクリアする。
// Tags が指定された場合はタグ関連付け全体を置換する（マージではない）。
type ProjectPatch struct {
	Title           *string                  `json:"title"`
	Subtitle        *string                  `json:"subtitle"`
	MinistryID      Optional[string]         `json:"ministry_id"`
	StateID         Optional[string]         `json:"state_id"`
	Status          *ProjectStatus           `json:"status"`
	StartDate       *time.Time               `json:"start_date"`
	ExpectedEndDate Optional[time.Time]      `json:"expected_end_date"`
	ActualEndDate   Optional[time.Time]      `json:"actual_end_date"`
	Description     *string                  `json:"description"`
	Budget          Optional[float64]        `json:"budget"`
	Expenditure     Optional[float64]        `json:"expenditure"`
	Images          Optional[[]ProjectImage] `json:"images"`
	Videos          Optional[[]Video]        `json:"videos"`
	ImpactStats     Optional[[]ImpactStat]   `json:"impact_stats"`
	Tags            *[]string                `json:"tags"`
}
