package locale

import (
	"fmt"
	"strconv"
	"strings"
)

// swahiliHourWords maps clock hours 1-12 to their Swahili words. The table
// is used only for hour naming, never for general numerals.
var swahiliHourWords = map[int]string{
	1:  "Moja",
	2:  "Mbili",
	3:  "Tatu",
	4:  "Nne",
	5:  "Tano",
	6:  "Sita",
	7:  "Saba",
	8:  "Nane",
	9:  "Tisa",
	10: "Kumi",
	11: "Kumi na Moja",
	12: "Kumi na Mbili",
}

// HourWord returns the Swahili word for a clock hour in 1..12.
func HourWord(hour int) string {
	return swahiliHourWords[hour]
}

// PeriodOf returns the Swahili day-period word for a 24-hour clock hour:
// [5,12) Asubuhi, [12,16) Mchana, [16,19) Jioni, anything else Usiku.
func PeriodOf(hour24 int) string {
	switch {
	case hour24 >= 5 && hour24 < 12:
		return "Asubuhi"
	case hour24 >= 12 && hour24 < 16:
		return "Mchana"
	case hour24 >= 16 && hour24 < 19:
		return "Jioni"
	default:
		return "Usiku"
	}
}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(hhmm string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", hhmm)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: out of range", hhmm)
	}
	return hour, minute, nil
}

// FormatTime renders a 24-hour "HH:MM" string in the requested language.
//
// English is the standard 12-hour clock with AM/PM, zero-padded minutes,
// and hour 0 shown as 12.
//
// Swahili uses the East African civil-time convention: the hour cycle is
// offset six hours from the Western clock, the day-period word is chosen
// from the original 24-hour hour, and the minute determines the phrase:
// exact hour "kamili", :15 "na robo", :30 "na nusu", :45 "kasorobo" with
// the next hour's word, other minutes below 30 "na dakika m", and minutes
// above 30 count down to the next hour with "kasoro dakika".
func FormatTime(hhmm string, lang Lang) (string, error) {
	hour, minute, err := ParseClock(hhmm)
	if err != nil {
		return "", err
	}

	if lang == English {
		ampm := "AM"
		if hour >= 12 {
			ampm = "PM"
		}
		h12 := hour % 12
		if h12 == 0 {
			h12 = 12
		}
		return fmt.Sprintf("%d:%02d %s", h12, minute, ampm), nil
	}

	swahiliHour := hour + 6
	if hour >= 7 {
		swahiliHour = hour - 6
	}
	if swahiliHour > 12 {
		swahiliHour -= 12
	}
	if swahiliHour == 0 {
		swahiliHour = 12
	}

	period := PeriodOf(hour)
	word := swahiliHourWords[swahiliHour]

	switch minute {
	case 0:
		return fmt.Sprintf("Saa %s kamili %s", word, period), nil
	case 15:
		return fmt.Sprintf("Saa %s na robo %s", word, period), nil
	case 30:
		return fmt.Sprintf("Saa %s na nusu %s", word, period), nil
	}

	nextWord := swahiliHourWords[swahiliHour%12+1]
	if minute == 45 {
		return fmt.Sprintf("Saa %s kasorobo %s", nextWord, period), nil
	}
	if minute < 30 {
		return fmt.Sprintf("Saa %s na dakika %d %s", word, minute, period), nil
	}
	return fmt.Sprintf("Saa %s kasoro dakika %d %s", nextWord, 60-minute, period), nil
}
