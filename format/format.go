// Package format renders money the way the app shows it (lakh/crore
// grouping, rupee symbol, no decimals) and cleans what users type into the
// calculator fields.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "₹"
	notAvailable   = "N/A"
)

// GroupIndian inserts separators into a string of digits using the Indian
// numbering system: the last three digits form one group, every group
// before them has two digits. Leading zeros are dropped.
func GroupIndian(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	first := len(head) % 2
	if first > 0 {
		b.WriteString(head[:first])
	}
	for i := first; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// FormatINR rounds to whole rupees and groups the result, e.g. 5000000 -> "₹50,00,000".
func FormatINR(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return notAvailable
	}
	d := decimal.NewFromFloat(value).Round(0)
	grouped := GroupIndian(d.Abs().String())
	if d.IsNegative() {
		return "-" + CurrencySymbol + grouped
	}
	return CurrencySymbol + grouped
}

// CleanAmount keeps only the digits of raw. It returns the parsed value and
// the grouped echo shown back in the input field.
func CleanAmount(raw string) (float64, string) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0, ""
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, ""
	}
	return v, GroupIndian(digits)
}

// CleanDecimal is CleanAmount that also allows a single decimal point
// followed by at most two digits.
func CleanDecimal(raw string) (float64, string) {
	var whole, frac strings.Builder
	seenDot := false
	for _, r := range raw {
		switch {
		case r == '.' && !seenDot:
			seenDot = true
		case r >= '0' && r <= '9' && !seenDot:
			whole.WriteRune(r)
		case r >= '0' && r <= '9' && frac.Len() < 2:
			frac.WriteRune(r)
		}
	}
	if whole.Len() == 0 && !seenDot {
		return 0, ""
	}

	echo := ""
	if whole.Len() > 0 {
		echo = GroupIndian(whole.String())
	}
	if seenDot {
		if echo == "" {
			echo = "0"
		}
		echo += "." + frac.String()
	}

	v, err := strconv.ParseFloat(whole.String()+"."+frac.String(), 64)
	if err != nil {
		return 0, echo
	}
	return v, echo
}
