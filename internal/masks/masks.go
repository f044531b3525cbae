// Package masks holds the display transforms for phone numbers and
// currency values. Forms store the unmasked value and render the
// masked one, so every transform here has a strict inverse.
package masks

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone formats a Brazilian phone number progressively as digits are
// typed: "(DD", "(DD) DDDD", "(DD) DDDD-DDDD" and the 11-digit mobile
// form "(DD) DDDDD-DDDD". Digits past the eleventh are dropped.
func Phone(value string) string {
	numbers := digitsOnly(value)

	switch {
	case len(numbers) <= 2:
		return "(" + numbers
	case len(numbers) <= 6:
		return "(" + numbers[:2] + ") " + numbers[2:]
	case len(numbers) <= 10:
		return "(" + numbers[:2] + ") " + numbers[2:6] + "-" + numbers[6:]
	default:
		return "(" + numbers[:2] + ") " + numbers[2:7] + "-" + numbers[7:11]
	}
}

// PhoneDigits strips the mask, leaving the canonical digit-only string
// that is stored.
func PhoneDigits(value string) string {
	return digitsOnly(value)
}

// ValidPhone reports whether the value holds a complete landline (10
// digits) or mobile (11 digits) number.
func ValidPhone(value string) bool {
	n := len(digitsOnly(value))
	return n >= 10 && n <= 11
}

// FormatPhone renders a stored digit string for display. Values that are
// not complete phone numbers are returned unchanged.
func FormatPhone(value string) string {
	numbers := digitsOnly(value)

	switch len(numbers) {
	case 10:
		return "(" + numbers[:2] + ") " + numbers[2:6] + "-" + numbers[6:]
	case 11:
		return "(" + numbers[:2] + ") " + numbers[2:7] + "-" + numbers[7:]
	default:
		return value
	}
}

// Currency renders typed digits as Brazilian reais. The digits are read
// as a cent amount, so "5" means five cents, not five reais. An input
// with no digits renders as the empty string.
func Currency(value string) string {
	numbers := digitsOnly(value)
	if numbers == "" {
		return ""
	}

	cents, err := strconv.ParseInt(numbers, 10, 64)
	if err != nil {
		return ""
	}
	return FormatCurrency(float64(cents) / 100)
}

// CurrencyValue strips the mask and returns the decimal amount as a
// string, dropping trailing zeros ("505" -> "5.05", "500" -> "5").
// An input with no digits yields "0".
func CurrencyValue(value string) string {
	numbers := digitsOnly(value)
	if numbers == "" {
		return "0"
	}

	cents, err := strconv.ParseInt(numbers, 10, 64)
	if err != nil {
		return "0"
	}
	return strconv.FormatFloat(float64(cents)/100, 'f', -1, 64)
}

// FormatCurrency renders an amount in reais with two fraction digits and
// pt-BR grouping, e.g. 5000 -> "R$ 5.000,00".
func FormatCurrency(amount float64) string {
	return ptBR.Sprintf("R$ %.2f", amount)
}
