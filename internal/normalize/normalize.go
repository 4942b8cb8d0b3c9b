package normalize

import (
	"net/url"
	"strings"
)

// TrimText убирает NBSP и обрезает пробелы по краям
func TrimText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(s)
}

// AbsoluteURL резолвит относительный href против базового URL.
// Абсолютные ссылки возвращаются как есть, мусорные — пустой строкой.
func AbsoluteURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return href
	}
	if base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
