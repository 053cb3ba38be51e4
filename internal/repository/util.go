package repository

import (
	"encoding/json"
	"strings"
)

func joinSets(sets []string) string {
	return strings.Join(sets, ", ")
}

// encodeJSONArrayColumn は JSON テキスト列へ書き込む値を生成する。
// null 指定・エンコード不能は空文字列（マッパーが空配列として読む値）になる。
func encodeJSONArrayColumn[T any](v *[]T) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(*v)
	if err != nil {
		return ""
	}
	return string(b)
}
