package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nigeriagovhub/backend/internal/mapper"
	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// credentialsStrategy はメールアドレスとパスワードを検証する。
// 4 つのチェックポイントのいずれで落ちても、外部に見える結果は
// 「資格情報が不正」か「メール未確認」の 2 種類だけに固定する。
type credentialsStrategy struct {
	userRepo repository.UserRepository
}

func (st *credentialsStrategy) Verify(ctx context.Context, creds Credentials) (*model.Principal, error) {
	// (1) 入力が揃っているか
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrInvalidCredentials
	}

	// (2) パスワードハッシュを持つユーザーが存在するか。
	// アカウントの有無を外部から推測させないため、不在もハッシュ不在も同じ結果にする
	user, err := st.userRepo.FindFullByEmail(ctx, creds.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}

	// (3) パスワードが一致するか
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// (4) メール確認済みか
	if user.EmailVerified == nil {
		return nil, ErrEmailNotVerified
	}

	return &model.Principal{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
		Role:  user.Role,
	}, nil
}

// federatedStrategy は外部 IdP で検証済みのアイデンティティを受け取り、
// ローカルユーザーに対応付ける。初回は資格情報なしのユーザーを作成する。
type federatedStrategy struct {
	userRepo repository.UserRepository
}

func (st *federatedStrategy) Verify(ctx context.Context, creds Credentials) (*model.Principal, error) {
	if creds.Email == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := st.userRepo.FindByEmail(ctx, creds.Email)
	if errors.Is(err, repository.ErrNotFound) {
		user, err = st.userRepo.Create(ctx, repository.CreateUserParams{
			Name:  creds.Name,
			Email: creds.Email,
			Role:  model.RoleUser,
		})
	}
	if err != nil {
		return nil, err
	}

	p := &model.Principal{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
		Role:  user.Role,
	}
	if p.Image == nil {
		p.Image = creds.Image
	}
	return p, nil
}

// AuthServiceImpl は AuthService の実装。
// 対応する認証方式は構築時に固定され、実行時に増減しない。
type AuthServiceImpl struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.VerificationTokenRepository
	tokens     VerificationTokenService
	strategies map[StrategyName]AuthStrategy
	now        func() time.Time
}

// NewAuthService は AuthServiceImpl を生成する（DI: 各リポジトリとトークンサービスを注入）
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.VerificationTokenRepository,
	tokens VerificationTokenService,
) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		strategies: map[StrategyName]AuthStrategy{
			StrategyCredentials: &credentialsStrategy{userRepo: userRepo},
			StrategyFederated:   &federatedStrategy{userRepo: userRepo},
		},
		now: time.Now,
	}
}

// Authenticate は指定方式で資格情報を検証し、プリンシパルを発行する
func (s *AuthServiceImpl) Authenticate(ctx context.Context, strategy StrategyName, creds Credentials) (*model.Principal, error) {
	st, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("unsupported auth strategy %q", strategy)
	}
	return st.Verify(ctx, creds)
}

// Register はユーザーを新規作成し、メール確認トークンを発行する。
// メールアドレス重複は repository.ErrConflict をそのまま返す。
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*model.User, *model.VerificationToken, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, nil, &mapper.ValidationError{Entity: "user", Field: "name"}
	}
	if email == "" {
		return nil, nil, &mapper.ValidationError{Entity: "user", Field: "email"}
	}
	if password == "" {
		return nil, nil, &mapper.ValidationError{Entity: "user", Field: "password"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.Create(ctx, repository.CreateUserParams{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	})
	if err != nil {
		return nil, nil, err
	}

	token, err := s.tokens.Issue(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	return user, token, nil
}

// VerifyEmail は確認トークンを消費してメール確認済みにする。
// 期限切れの判定は消費時にのみ行う
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	vt, err := s.tokenRepo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTokenInvalid
	}
	if err != nil {
		return err
	}

	now := s.now()
	if vt.IsExpired(now) {
		_ = s.tokenRepo.DeleteByID(ctx, vt.ID)
		return ErrTokenExpired
	}

	if err := s.userRepo.SetEmailVerified(ctx, vt.Email, now); err != nil {
		return err
	}
	return s.tokenRepo.DeleteByID(ctx, vt.ID)
}
