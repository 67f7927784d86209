package locale

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatList joins items with the locale-correct conjunction. The exact
// separator pattern is a grammar contract: empty for no items, the sole
// item as-is, "A na B" / "A and B" for two, and the Oxford-style
// "A, B, na C" / "A, B, and C" for three or more.
func FormatList(items []string, lang Lang) string {
	conj := lang.conjunction()
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", " + conj + " " + items[len(items)-1]
	}
}

var titleCaser = cases.Title(language.Und)

// TitleCase uppercases the first letter of every word and lowercases the
// rest, so "DAR ES SALAAM" renders as "Dar Es Salaam" in narrative prose.
func TitleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// TitleCaseAll applies TitleCase to every item of a list.
func TitleCaseAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = TitleCase(item)
	}
	return out
}
