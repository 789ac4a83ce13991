package period

import (
	"fmt"
	"strings"
	"time"
)

// Locale selects the month names used in display labels.
type Locale string

const (
	Spanish Locale = "es"
	English Locale = "en"
)

// DefaultLocale is the locale of the dashboard labels.
const DefaultLocale = Spanish

var shortMonths = map[Locale][12]string{
	Spanish: {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	English: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// ParseLocale parses a locale name such as "es", "es-ES" or "en-US".
func ParseLocale(s string) (Locale, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	switch Locale(s) {
	case Spanish:
		return Spanish, nil
	case English:
		return English, nil
	case "":
		return DefaultLocale, nil
	default:
		return DefaultLocale, fmt.Errorf("unsupported locale %q", s)
	}
}

// ShortMonth returns the abbreviated name of m in locale l.
// Unknown locales use the default locale.
func ShortMonth(m time.Month, l Locale) string {
	names, ok := shortMonths[l]
	if !ok {
		names = shortMonths[DefaultLocale]
	}
	return names[(int(m)-1+12)%12]
}

// Label returns the display label of the month of t: short month name and two-digit year,
// e.g. "oct 26".
func Label(t time.Time, l Locale) string {
	return fmt.Sprintf("%s %02d", ShortMonth(t.Month(), l), t.Year()%100)
}
