package model

import "time"

// UserRole はユーザーの権限ロール
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// ParseUserRole は永続化されたロール文字列を UserRole に変換する。
// 未知・空の値は RoleUser にフォールバックする。
func ParseUserRole(s string) UserRole {
	switch UserRole(s) {
	case RoleUser, RoleAdmin:
		return UserRole(s)
	default:
		return RoleUser
	}
}

// User はユーザーのビューモデル（パスワードハッシュは含まない）
type User struct {
	ID            string     `json:"id"`
	Name          *string    `json:"name"`
	Email         *string    `json:"email"`
	EmailVerified *time.Time `json:"emailVerified"`
	Image         *string    `json:"image"`
	Role          UserRole   `json:"role"`
	CreatedAt     *time.Time `json:"created_at"`
}

// FullUser は認証チェック用の完全なユーザーレコード。
// PasswordHash は資格情報アカウントのみ保持する。リポジトリ層の外へは出さない。
type FullUser struct {
	User
	PasswordHash *string `json:"-"`
}

// HasPassword は資格情報ベースのアカウントかどうかを返す。
func (u *FullUser) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Principal は認証成功後に発行される最小限のアイデンティティ
type Principal struct {
	ID    string   `json:"id"`
	Name  *string  `json:"name"`
	Email *string  `json:"email"`
	Image *string  `json:"image"`
	Role  UserRole `json:"role"`
}
