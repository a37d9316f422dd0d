package entity

import "strings"

// Lang selects which language column a public read returns.
type Lang string

const (
	LangFR Lang = "fr"
	LangEN Lang = "en"
)

// ParseLang maps a query value to a Lang. Anything other than "en" is French.
func ParseLang(s string) Lang {
	if strings.EqualFold(strings.TrimSpace(s), string(LangEN)) {
		return LangEN
	}

	return LangFR
}

// Pick returns en when the language is English, fr otherwise.
func (l Lang) Pick(fr, en string) string {
	if l == LangEN {
		return en
	}

	return fr
}

// ContentKind names a content table, used in events and share links.
type ContentKind string

const (
	ContentKindNews    ContentKind = "news"
	ContentKindProject ContentKind = "projects"
)
