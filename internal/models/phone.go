package models

import (
	"strings"

	"github.com/dmitrijs2005/policykeeper/internal/common"
)

// PhoneDigits is the length of a normalized phone number.
const PhoneDigits = 10

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone removes symbols, spaces and any country code, keeping the
// last 10 digits. Inputs with fewer than 10 digits yield common.ErrInvalidPhone.
func NormalizePhone(s string) (string, error) {
	d := Digits(s)
	if len(d) < PhoneDigits {
		return "", common.ErrInvalidPhone
	}
	return d[len(d)-PhoneDigits:], nil
}
