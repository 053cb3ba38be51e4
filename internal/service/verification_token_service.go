package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// VerificationTokenService はメール確認トークンに関するビジネスロジックのインターフェース
type VerificationTokenService interface {
	Issue(ctx context.Context, email string) (*model.VerificationToken, error)
	GetByToken(ctx context.Context, token string) (*model.VerificationToken, error)
	GetByEmail(ctx context.Context, email string) (*model.VerificationToken, error)
}
