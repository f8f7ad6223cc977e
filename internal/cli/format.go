// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount formats a monetary amount with comma separators and a fixed
// two decimal places. e.g., 1234.5 -> "1,234.50"
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	remainder := len(whole) % 3
	if remainder > 0 {
		b.WriteString(whole[:remainder])
	}
	for i := remainder; i < len(whole); i += 3 {
		if b.Len() > boolToInt(neg) {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FormatSigned formats an amount with an explicit sign prefix.
// e.g., 120 -> "+120.00", -120 -> "-120.00"
func FormatSigned(d decimal.Decimal) string {
	if d.IsNegative() {
		return FormatAmount(d)
	}
	return "+" + FormatAmount(d)
}

// FormatDay formats a day of month as an English ordinal.
// e.g., 1 -> "1st", 22 -> "22nd"
func FormatDay(day int) string {
	suffix := "th"
	switch day % 10 {
	case 1:
		if day != 11 {
			suffix = "st"
		}
	case 2:
		if day != 12 {
			suffix = "nd"
		}
	case 3:
		if day != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
