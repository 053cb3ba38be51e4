package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Tests: Issue
// ---------------------------------------------------------------------------

func TestVerificationTokenService_Issue_ReplacesExistingToken(t *testing.T) {
	var calls []string
	tokenRepo := &mockVerificationTokenRepository{
		deleteByEmailFunc: func(ctx context.Context, email string) error {
			calls = append(calls, "delete:"+email)
			return nil
		},
		createFunc: func(ctx context.Context, email, token string, expires time.Time) (*model.VerificationToken, error) {
			calls = append(calls, "create:"+email)
			return &model.VerificationToken{ID: "t1", Email: email, Token: token, Expires: expires}, nil
		},
	}
	svc := NewVerificationTokenService(tokenRepo)

	vt, err := svc.Issue(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vt.Token == "" {
		t.Error("expected a non-empty token")
	}
	if len(calls) != 2 || calls[0] != "delete:ada@example.com" || calls[1] != "create:ada@example.com" {
		t.Errorf("expected delete-then-create, got %v", calls)
	}
}

func TestVerificationTokenService_Issue_ExpiresInOneHour(t *testing.T) {
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var gotExpires time.Time
	tokenRepo := &mockVerificationTokenRepository{
		createFunc: func(ctx context.Context, email, token string, expires time.Time) (*model.VerificationToken, error) {
			gotExpires = expires
			return &model.VerificationToken{ID: "t1", Email: email, Token: token, Expires: expires}, nil
		},
	}
	svc := &VerificationTokenServiceImpl{tokenRepo: tokenRepo, now: func() time.Time { return fixed }}

	if _, err := svc.Issue(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := fixed.Add(time.Hour); !gotExpires.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, gotExpires)
	}
}

func TestVerificationTokenService_Issue_PropagatesDeleteError(t *testing.T) {
	boom := errors.New("delete failed")
	tokenRepo := &mockVerificationTokenRepository{
		deleteByEmailFunc: func(ctx context.Context, email string) error {
			return boom
		},
		createFunc: func(ctx context.Context, email, token string, expires time.Time) (*model.VerificationToken, error) {
			t.Fatal("must not create a token when cleanup fails")
			return nil, nil
		},
	}
	svc := NewVerificationTokenService(tokenRepo)

	if _, err := svc.Issue(context.Background(), "ada@example.com"); !errors.Is(err, boom) {
		t.Errorf("expected delete error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Tests: lookups
// ---------------------------------------------------------------------------

// 取得系は期限切れ判定を行わない。判定は消費側の責務とする
func TestVerificationTokenService_GetByToken_ReturnsExpiredToken(t *testing.T) {
	expired := &model.VerificationToken{
		ID: "t1", Email: "ada@example.com", Token: "tok",
		Expires: time.Now().Add(-time.Hour),
	}
	tokenRepo := &mockVerificationTokenRepository{
		findByTokenFunc: func(ctx context.Context, token string) (*model.VerificationToken, error) {
			return expired, nil
		},
	}
	svc := NewVerificationTokenService(tokenRepo)

	vt, err := svc.GetByToken(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vt.ID != "t1" {
		t.Errorf("expected token t1, got %q", vt.ID)
	}
}

func TestVerificationTokenService_GetByEmail_NotFound(t *testing.T) {
	svc := NewVerificationTokenService(&mockVerificationTokenRepository{})

	if _, err := svc.GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
