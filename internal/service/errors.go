package service

import "errors"

// 認証失敗は外部へは必ず次の 2 種類のどちらかとして見える。
// 「ユーザーが存在しない」と「パスワードが違う」を区別しないことで
// アカウント列挙を防ぐ。
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
)

// メール確認フローのエラー
var (
	ErrTokenInvalid = errors.New("invalid verification token")
	ErrTokenExpired = errors.New("verification token expired")
)
