package model

import (
	"bytes"
	"encoding/json"
)

// Optional は部分更新リクエストのフィールドを表す。
// JSON に存在しない場合は Set=false、明示的に null の場合は Set=true / Valid=false、
// 値がある場合は Set=true / Valid=true となる。
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON は json.Unmarshaler 実装。
// フィールドが JSON に現れなかった場合は呼ばれないため Set は false のまま残る。
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr は値が設定されている場合のみそのポインタを返す（null・未指定は nil）。
func (o Optional[T]) Ptr() *T {
	if o.Set && o.Valid {
		v := o.Value
		return &v
	}
	return nil
}

// Some は値ありの Optional を生成する（主にテスト用）。
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null は明示的 null の Optional を生成する（主にテスト用）。
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
