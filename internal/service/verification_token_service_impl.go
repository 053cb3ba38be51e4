package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// verificationTokenTTL はメール確認トークンの有効期間
const verificationTokenTTL = time.Hour

// VerificationTokenServiceImpl は VerificationTokenService の実装
type VerificationTokenServiceImpl struct {
	tokenRepo repository.VerificationTokenRepository
	now       func() time.Time
}

// NewVerificationTokenService は VerificationTokenServiceImpl を生成する（DI: VerificationTokenRepository を注入）
func NewVerificationTokenService(tokenRepo repository.VerificationTokenRepository) VerificationTokenService {
	return &VerificationTokenServiceImpl{tokenRepo: tokenRepo, now: time.Now}
}

// Issue はメールアドレスに対する確認トークンを発行する。
// 既存トークンは失効させ、常に最新の 1 件だけが有効になる
func (s *VerificationTokenServiceImpl) Issue(ctx context.Context, email string) (*model.VerificationToken, error) {
	if err := s.tokenRepo.DeleteByEmail(ctx, email); err != nil {
		return nil, err
	}
	expires := s.now().Add(verificationTokenTTL)
	return s.tokenRepo.Create(ctx, email, uuid.NewString(), expires)
}

// GetByToken はトークン文字列で確認トークンを取得する
func (s *VerificationTokenServiceImpl) GetByToken(ctx context.Context, token string) (*model.VerificationToken, error) {
	return s.tokenRepo.FindByToken(ctx, token)
}

// GetByEmail はメールアドレスで確認トークンを取得する
func (s *VerificationTokenServiceImpl) GetByEmail(ctx context.Context, email string) (*model.VerificationToken, error) {
	return s.tokenRepo.FindByEmail(ctx, email)
}
