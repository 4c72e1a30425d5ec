package validators

import "strings"

// NormalizePhone strips spaces and separators so the phone can act as the
// customer dedup key ("070-123 45 67" and "0701234567" are the same caller).
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	n := NormalizePhone(phone)
	digits := strings.TrimPrefix(n, "+")
	return len(digits) >= 7 && len(digits) <= 15
}
