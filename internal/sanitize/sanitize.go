// Package sanitize はリッチテキストを保存前に無害化する。
// 許可リスト方式ではなく、実行可能なコンテンツ（script/style/iframe、
// イベントハンドラ属性、javascript: URL)の除去のみを行う。
package sanitize

import "regexp"

var (
	scriptRe  = regexp.MustCompile(`(?is)<\s*(script|style|iframe|object|embed)\b.*?<\s*/\s*(script|style|iframe|object|embed)\s*>`)
	eventRe   = regexp.MustCompile(`(?i)\son\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	jsHrefRe  = regexp.MustCompile(`(?i)(href|src)\s*=\s*(["']?)\s*javascript:[^"'\s>]*(["']?)`)
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// RichText は保存前のリッチテキストから危険な要素を取り除く。
func RichText(s string) string {
	s = commentRe.ReplaceAllString(s, "")
	s = scriptRe.ReplaceAllString(s, "")
	s = eventRe.ReplaceAllString(s, "")
	s = jsHrefRe.ReplaceAllString(s, `$1=$2#$3`)
	return s
}
