// Package shoputil provides pricing and text helpers shared by the services.
package shoputil

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/example/order-demo/go/pkg/models"
)

// CalculateTotal returns the sum of product prices. It does not round.
func CalculateTotal(products []models.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}

// FormatCurrency formats amount as dollars with thousands separators and two
// fraction digits, e.g. "$1,234.56". Rounding is half away from zero.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	whole, cents, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	return "$" + sign + groupThousands(whole) + "." + cents
}

// groupThousands inserts commas into a string of decimal digits.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		p := message.NewPrinter(language.English)
		return p.Sprintf("%v", number.Decimal(n))
	}

	// Past int64 range.
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ValidateEmail reports whether email has an "@" and a "." in the part after the last "@".
// It is a cheap syntactic check, not RFC 5322 validation.
func ValidateEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// Slugify lowercases text, turns spaces into hyphens and trims hyphens at both ends.
// Punctuation is kept and repeated hyphens are not collapsed.
func Slugify(text string) string {
	return strings.Trim(strings.ReplaceAll(strings.ToLower(text), " ", "-"), "-")
}
