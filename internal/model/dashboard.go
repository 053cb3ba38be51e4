package model

// UserDashboardStats はユーザーダッシュボードの集計値。
// AverageRating は rating が null でないフィードバックのみの平均（該当なしは 0）。
type UserDashboardStats struct {
	FeedbackSubmitted  int     `json:"feedbackSubmitted"`
	BookmarkedProjects int     `json:"bookmarkedProjects"`
	BookmarkedNews     int     `json:"bookmarkedNews"`
	AverageRating      float64 `json:"averageRating"`
}
