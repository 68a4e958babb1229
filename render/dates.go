package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// datePattern describes one known input date layout as positional
// year/month/day indices into the three separator-delimited parts.
type datePattern struct {
	year, month, day int
}

// inputPatterns are tried in order until one parses. The order is
// significant and deliberately heuristic: an ambiguous value like
// 01/02/2024 resolves as DD/MM because that pattern is tried first.
// This matches the behavior existing real-world invoices rely on.
var inputPatterns = []datePattern{
	{0, 1, 2}, // %Y-%m-%d
	{2, 1, 0}, // %d/%m/%Y
	{2, 0, 1}, // %m/%d/%Y
	{2, 1, 0}, // %d-%m-%Y
	{2, 0, 1}, // %m-%d-%Y
	{0, 1, 2}, // %Y/%m/%d
}

// FormatDate re-emits raw according to format's %d/%m/%Y-style tokens,
// best-effort. The raw value is tried against each known input pattern
// in turn; if none parses, raw is returned unchanged. Reformatting must
// never fail a render.
func FormatDate(raw, format string) string {
	if strings.TrimSpace(raw) == "" || format == "" {
		return raw
	}

	parts := splitDateParts(raw)
	if len(parts) != 3 {
		return raw
	}

	for _, p := range inputPatterns {
		t, ok := parseParts(parts, p)
		if !ok {
			continue
		}
		out := strings.ReplaceAll(format, "%d", fmt.Sprintf("%02d", t.Day()))
		out = strings.ReplaceAll(out, "%m", fmt.Sprintf("%02d", int(t.Month())))
		out = strings.ReplaceAll(out, "%Y", strconv.Itoa(t.Year()))
		return out
	}

	return raw
}

// splitDateParts strips everything but digits and separators, then
// splits on the separators.
func splitDateParts(raw string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '/' || r == '-' {
			return r
		}
		return -1
	}, raw)
	return strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == '/' || r == '-'
	})
}

func parseParts(parts []string, p datePattern) (time.Time, bool) {
	year, err := strconv.Atoi(parts[p.year])
	if err != nil || year < 1000 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[p.month])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[p.day])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components; reject those.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
