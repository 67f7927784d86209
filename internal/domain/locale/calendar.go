package locale

import "time"

// Indexed by time.Weekday (Sunday = 0).
var swahiliWeekdays = [7]string{
	"Jumapili",
	"Jumatatu",
	"Jumanne",
	"Jumatano",
	"Alhamisi",
	"Ijumaa",
	"Jumamosi",
}

// Indexed by time.Month - 1.
var swahiliMonths = [12]string{
	"Januari",
	"Februari",
	"Machi",
	"Aprili",
	"Mei",
	"Juni",
	"Julai",
	"Agosti",
	"Septemba",
	"Oktoba",
	"Novemba",
	"Desemba",
}

// WeekdayName returns the weekday name in the target language.
func WeekdayName(t time.Time, lang Lang) string {
	if lang == English {
		return t.Weekday().String()
	}
	return swahiliWeekdays[t.Weekday()]
}

// MonthName returns the month name in the target language.
func MonthName(t time.Time, lang Lang) string {
	if lang == English {
		return t.Month().String()
	}
	return swahiliMonths[t.Month()-1]
}

// FormatDateGB renders a date as DD/MM/YYYY for embedding in prose.
func FormatDateGB(t time.Time) string {
	return t.Format("02/01/2006")
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
