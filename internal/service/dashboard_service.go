package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// DashboardService はユーザーダッシュボード統計のインターフェース
type DashboardService interface {
	StatsForUser(ctx context.Context, userID string) (*model.UserDashboardStats, error)
}
