package i18n

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatNumber groups v with the separators of the locale's region.
func FormatNumber(l Locale, v float64) string {
	return message.NewPrinter(l.Tag()).Sprint(number.Decimal(v))
}

// FormatDate renders t as "Jan 2, 2006" in English and as day, month name and
// year in Arabic-Indic digits in Arabic. The zero time renders as "".
func FormatDate(l Locale, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if l != Arabic {
		return t.Format("Jan 2, 2006")
	}
	return ArabicDigits(strconv.Itoa(t.Day())) + " " +
		arabicMonths[t.Month()-1] + " " +
		ArabicDigits(strconv.Itoa(t.Year()))
}

// FormatCurrency rounds amount to two places and renders it with the symbol
// of the ISO 4217 code. Unknown codes are written out as a prefix.
func FormatCurrency(l Locale, amount decimal.Decimal, code string) string {
	rounded := amount.Round(2)
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return strings.ToUpper(code) + " " + rounded.StringFixed(2)
	}

	p := message.NewPrinter(l.Tag())
	f, _ := rounded.Float64()
	num := p.Sprint(number.Decimal(f, number.Scale(2)))
	sym := p.Sprint(currency.Symbol(unit))
	if l == Arabic {
		return num + " " + sym
	}
	return sym + num
}

// ArabicDigits replaces ASCII digits in s with Arabic-Indic digits.
func ArabicDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '٠' + (r - '0')
		}
		return r
	}, s)
}
