package mapper

import "fmt"

// ValidationError は永続化データの破損をマッピング時に検出したことを表す。
// 必須日付の不正など、上位層へ黙って渡してはならないケースのみに使う。
type ValidationError struct {
	Entity string
	ID     string
	Field  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s for %s %s", e.Field, e.Entity, e.ID)
}
