package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// StrategyName は認証方式の識別子
type StrategyName string

const (
	// StrategyCredentials はメールアドレスとパスワードによる認証
	StrategyCredentials StrategyName = "credentials"
	// StrategyFederated は外部 IdP で検証済みのアイデンティティによる認証
	StrategyFederated StrategyName = "federated"
)

// Credentials は認証試行の入力。方式により参照するフィールドが異なる。
// credentials 方式は Email と Password を、federated 方式は
// 外部で検証済みの Email / Name / Image を使う。
type Credentials struct {
	Email    string
	Password string
	Name     string
	Image    *string
}

// AuthStrategy は単一の認証方式を検証するインターフェース
type AuthStrategy interface {
	Verify(ctx context.Context, creds Credentials) (*model.Principal, error)
}

// AuthService は認証・登録・メール確認のインターフェース
type AuthService interface {
	// Authenticate は指定方式で資格情報を検証し、プリンシパルを発行する
	Authenticate(ctx context.Context, strategy StrategyName, creds Credentials) (*model.Principal, error)
	// Register はユーザーを新規作成し、メール確認トークンを発行する
	Register(ctx context.Context, name, email, password string) (*model.User, *model.VerificationToken, error)
	// VerifyEmail は確認トークンを消費してメール確認済みにする
	VerifyEmail(ctx context.Context, token string) error
}
