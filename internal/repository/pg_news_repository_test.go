package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nigeriagovhub/backend/internal/model"
)

func TestPgNewsRepository_ToggleLike_Alternates(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()

	userRepo := NewPgUserRepository(pool)
	newsRepo := NewPgNewsRepository(pool)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	user, err := userRepo.Create(ctx, CreateUserParams{
		Name:  "Like Tester",
		Email: fmt.Sprintf("like-%s@example.com", unique),
		Role:  model.RoleUser,
	})
	if err != nil {
		t.Fatalf("Create user failed: %v", err)
	}

	article, err := newsRepo.Create(ctx, model.NewsArticleInput{
		Slug:          fmt.Sprintf("toggle-like-%s", unique),
		Title:         "Toggle Like Test",
		Summary:       "summary",
		Category:      "General",
		PublishedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create article failed: %v", err)
	}

	// いいね → 取り消し → 再いいね で状態が交互に切り替わること
	for i, want := range []bool{true, false, true} {
		liked, err := newsRepo.ToggleLike(ctx, article.ID, user.ID)
		if err != nil {
			t.Fatalf("ToggleLike #%d failed: %v", i+1, err)
		}
		if liked != want {
			t.Errorf("ToggleLike #%d: expected liked=%v, got %v", i+1, want, liked)
		}
	}

	// 再いいね後も行は1件だけであること
	var count int
	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM newslike WHERE user_id = $1 AND news_article_id = $2`,
		user.ID, article.ID,
	).Scan(&count); err != nil {
		t.Fatalf("count likes failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 like row after re-liking, got %d", count)
	}

	viewed, err := newsRepo.GetBySlug(ctx, article.Slug, &user.ID)
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if !viewed.IsLikedByUser {
		t.Error("expected article to be liked by the user after re-liking")
	}
	if viewed.LikeCount != 1 {
		t.Errorf("expected like count 1, got %d", viewed.LikeCount)
	}
}
