package model

import "time"

// VerificationToken はメール確認用の使い捨てトークン。
// 1 メールアドレスにつき同時に 1 件しか存在しない（発行時に旧トークンを削除する）。
type VerificationToken struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// IsExpired は基準時刻 now 時点で有効期限切れかどうかを返す。
func (t *VerificationToken) IsExpired(now time.Time) bool {
	return !t.Expires.After(now)
}
