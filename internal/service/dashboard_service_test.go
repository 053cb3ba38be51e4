package service

import (
	"context"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestDashboardService_StatsForUser_AggregatesAllSources(t *testing.T) {
	feedbackRepo := &mockFeedbackRepository{
		statsByUserFunc: func(ctx context.Context, userID string) (int, float64, error) {
			return 3, 3.0, nil
		},
	}
	bookmarkRepo := &mockBookmarkRepository{
		countProjectsByUserFunc: func(ctx context.Context, userID string) (int, error) {
			return 5, nil
		},
		countNewsByUserFunc: func(ctx context.Context, userID string) (int, error) {
			return 2, nil
		},
	}
	svc := NewDashboardService(feedbackRepo, bookmarkRepo)

	stats, err := svc.StatsForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.FeedbackSubmitted != 3 {
		t.Errorf("expected 3 feedback, got %d", stats.FeedbackSubmitted)
	}
	if stats.AverageRating != 3.0 {
		t.Errorf("expected average rating 3.0, got %v", stats.AverageRating)
	}
	if stats.BookmarkedProjects != 5 {
		t.Errorf("expected 5 bookmarked projects, got %d", stats.BookmarkedProjects)
	}
	if stats.BookmarkedNews != 2 {
		t.Errorf("expected 2 bookmarked news, got %d", stats.BookmarkedNews)
	}
}

// 単一ソースの障害はゼロ値として扱い、残りの統計は返す
func TestDashboardService_StatsForUser_PartialFailureKeepsRest(t *testing.T) {
	feedbackRepo := &mockFeedbackRepository{
		statsByUserFunc: func(ctx context.Context, userID string) (int, float64, error) {
			return 0, 0, errors.New("aggregation failed")
		},
	}
	bookmarkRepo := &mockBookmarkRepository{
		countProjectsByUserFunc: func(ctx context.Context, userID string) (int, error) {
			return 4, nil
		},
		countNewsByUserFunc: func(ctx context.Context, userID string) (int, error) {
			return 0, errors.New("count failed")
		},
	}
	svc := NewDashboardService(feedbackRepo, bookmarkRepo)

	stats, err := svc.StatsForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("partial failure must not fail the request, got %v", err)
	}
	if stats.FeedbackSubmitted != 0 || stats.AverageRating != 0 {
		t.Errorf("failed source must stay zero, got %+v", stats)
	}
	if stats.BookmarkedProjects != 4 {
		t.Errorf("expected 4 bookmarked projects, got %d", stats.BookmarkedProjects)
	}
	if stats.BookmarkedNews != 0 {
		t.Errorf("failed count must stay zero, got %d", stats.BookmarkedNews)
	}
}
