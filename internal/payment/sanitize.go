package payment

import "strings"

// Sanitize reduces payment details to their storable form. The card number
// keeps only its last 4 digits and the CVV is discarded, never recoverable.
func Sanitize(d Details) Sanitized {
	return Sanitized{
		Method:    d.Method,
		CardLast4: last4(d.CardNumber),
		ExpMonth:  d.ExpMonth,
		ExpYear:   d.ExpYear,
		Holder:    d.Holder,
	}
}

func last4(cardNumber string) string {
	var digits strings.Builder
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}
