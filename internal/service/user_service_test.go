package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nigeriagovhub/backend/internal/mapper"
	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestUserService_UpdateName_TrimsWhitespace(t *testing.T) {
	var storedName string
	repo := &mockUserRepository{
		updateNameFunc: func(ctx context.Context, id, name string) (*model.User, error) {
			storedName = name
			return &model.User{ID: id, Name: &name}, nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.UpdateName(context.Background(), "u1", "  Ada Obi  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storedName != "Ada Obi" {
		t.Errorf("expected trimmed name, got %q", storedName)
	}
	if user.Name == nil || *user.Name != "Ada Obi" {
		t.Errorf("unexpected returned user: %+v", user)
	}
}

func TestUserService_UpdateName_EmptyNameRejected(t *testing.T) {
	repo := &mockUserRepository{
		updateNameFunc: func(ctx context.Context, id, name string) (*model.User, error) {
			t.Fatal("repository must not be called for an empty name")
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.UpdateName(context.Background(), "u1", "   ")
	var ve *mapper.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "name" {
		t.Errorf("expected field name, got %q", ve.Field)
	}
}

func TestUserService_List_DegradesToEmptyOnStoreError(t *testing.T) {
	repo := &mockUserRepository{
		listFunc: func(ctx context.Context) ([]*model.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewUserService(repo)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("expected empty slice, got %v", users)
	}
}

func TestUserService_GetByID_NotFoundPropagates(t *testing.T) {
	svc := NewUserService(&mockUserRepository{})

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_Delete_CallsRepository(t *testing.T) {
	var deletedID string
	repo := &mockUserRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	svc := NewUserService(repo)

	if err := svc.Delete(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedID != "u1" {
		t.Errorf("expected u1 deleted, got %q", deletedID)
	}
}
