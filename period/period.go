// Package period handles the month labels used as the time axis of every ledger.
//
// A period label is a plain string such as "2026-01". Labels are never parsed as strict
// calendar dates: ledgers are filtered by string prefix, so "2026" selects a year and
// "2026-01" a month.
package period

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// KeyFormat is the format of the month key written by the importer.
const KeyFormat = "2006-01"

// readKeyFormat is the permissive read format (allows single-digit month).
const readKeyFormat = "2006-1"

// Key returns the "YYYY-MM" key of t, in UTC.
func Key(t time.Time) string { return t.UTC().Format(KeyFormat) }

// Year returns the prefix that selects all labels of year y.
func Year(y int) string { return strconv.Itoa(y) }

// Month returns the prefix that selects all labels of month m in year y.
func Month(y int, m time.Month) string { return fmt.Sprintf("%d-%02d", y, int(m)) }

// InYear reports whether label belongs to year y.
func InYear(label string, y int) bool { return strings.HasPrefix(label, Year(y)) }

// InMonth reports whether label belongs to month m of year y.
func InMonth(label string, y int, m time.Month) bool {
	return strings.HasPrefix(label, Month(y, m))
}

// Parse parses a "YYYY-MM" label. It is lenient and accepts "2026-1".
// Any trailing day part ("2026-01-15") is ignored.
func Parse(label string) (year int, month time.Month, err error) {
	s := strings.TrimSpace(label)
	if parts := strings.SplitN(s, "-", 3); len(parts) == 3 {
		s = parts[0] + "-" + parts[1]
	}
	t, err := time.Parse(readKeyFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid period %q want format %q: %w", label, KeyFormat, err)
	}
	return t.Year(), t.Month(), nil
}

// Years returns the distinct years found in labels, ascending. Unparseable labels are skipped.
func Years(labels ...string) []int {
	seen := make(map[int]bool)
	var years []int
	for _, l := range labels {
		y, _, err := Parse(l)
		if err != nil || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}
