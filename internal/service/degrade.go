package service

import (
	"errors"

	"github.com/nigeriagovhub/backend/internal/mapper"
)

// degradable は一覧取得の失敗を空結果へ縮退してよいかを判定する。
// ストア障害は縮退するが、永続化データ破損（ValidationError）は
// 黙って握りつぶさず呼び出し側へ伝える。
func degradable(err error) bool {
	var ve *mapper.ValidationError
	return !errors.As(err, &ve)
}
