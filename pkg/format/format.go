// Package format renders amounts and dates for display.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var symbols = map[string]string{
	"JPY": "¥",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Currency formats amount in the ISO 4217 currency code with the grouping
// rules of tag. Fraction digits follow the currency's standard rounding, so
// yen amounts have none. Codes outside ISO 4217 are printed as the raw code
// followed by the Grouped amount, rounded to cents.
func Currency(amount float64, code string, tag language.Tag) string {
	code = strings.ToUpper(code)
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " " + Grouped(math.Round(amount*100)/100)
	}
	scale, _ := currency.Standard.Rounding(unit)

	sym, ok := symbols[code]
	if !ok {
		sym = code + " "
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	p := message.NewPrinter(tag)
	var digits string
	if scale == 0 {
		digits = p.Sprintf("%d", int64(math.Round(amount)))
	} else {
		digits = p.Sprint(number.Decimal(amount, number.Scale(scale)))
	}
	return sign + sym + digits
}

// Grouped renders v with thousands separators.
func Grouped(v float64) string {
	return humanize.Commaf(v)
}

// ISODate is the layout of yyyy-MM-dd dates.
const ISODate = "2006-01-02"

var patternReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"MM", "01",
	"dd", "02",
)

// Layout converts a yyyy/MM/dd style pattern, as stored in the dateFormat
// preference, into a time layout.
func Layout(pattern string) string {
	return patternReplacer.Replace(pattern)
}

// Date formats t as yyyy-MM-dd when iso is set and with pattern otherwise.
// An empty pattern means MM/dd/yyyy.
func Date(t time.Time, pattern string, iso bool) string {
	if iso {
		return t.Format(ISODate)
	}
	if pattern == "" {
		pattern = "MM/dd/yyyy"
	}
	return t.Format(Layout(pattern))
}

// Relative describes t relative to now, e.g. "3 days ago".
func Relative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// StartOfWeek returns midnight of the first day of t's week, where weeks
// start on Monday or on Sunday.
func StartOfWeek(t time.Time, monday bool) time.Time {
	first := time.Sunday
	if monday {
		first = time.Monday
	}
	offset := (int(t.Weekday()) - int(first) + 7) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
