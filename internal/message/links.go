package message

import (
	"strings"

	"github.com/dmitrijs2005/policykeeper/internal/models"
)

// DefaultCountryCode is prefixed to bare 10-digit numbers.
const DefaultCountryCode = "91"

// WhatsAppURL returns a wa.me chat link for number prefilled with text.
// Non-digits are stripped; a 10-digit number gets the country code.
func WhatsAppURL(number, text, countryCode string) string {
	digits := models.Digits(number)
	if len(digits) == models.PhoneDigits {
		digits = countryCode + digits
	}
	return "https://wa.me/" + digits + "?text=" + EncodeURIComponent(text)
}

// DialURL returns a tel: link for number.
func DialURL(number, countryCode string) string {
	digits := models.Digits(number)
	if len(digits) == models.PhoneDigits {
		return "tel:+" + countryCode + digits
	}
	return "tel:" + digits
}

const upperhex = "0123456789ABCDEF"

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// EncodeURIComponent percent-encodes every UTF-8 byte of s outside the
// URI component unreserved set, matching what browsers produce for
// query values. Spaces become %20, never '+'.
func EncodeURIComponent(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}
