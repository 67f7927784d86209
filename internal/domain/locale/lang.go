// Package locale implements the bilingual text formatters: grammatically
// correct list joining, title casing, Swahili civil-time phrases, calendar
// name resolution, and the bold-span tokenizer for poster rich text.
package locale

import "strings"

// Lang is a supported output language.
type Lang string

const (
	Swahili Lang = "sw"
	English Lang = "en"
)

func (l Lang) IsValid() bool {
	return l == Swahili || l == English
}

func (l Lang) String() string {
	return string(l)
}

// ParseLang parses an operator-supplied language string, defaulting to
// Swahili.
func ParseLang(s string) Lang {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "en") {
		return English
	}
	return Swahili
}

// conjunction returns the list-joining conjunction word for the language.
func (l Lang) conjunction() string {
	if l == English {
		return "and"
	}
	return "na"
}
