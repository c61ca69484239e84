package sanitizer

import (
	"strings"
)

// ExtractPhoneDigits strips every character that is not an ASCII digit,
// including the leading "+" of an international number.
func ExtractPhoneDigits(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// CountPhoneDigits returns the number of significant digits in a phone number.
func CountPhoneDigits(phone string) int {
	n := 0
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			n++
		}
	}
	return n
}

// NormalizePhone reduces a phone number to "+digits" for international numbers
// and to bare digits otherwise. Useful as a comparison key; the stored value of
// a contact phone is never normalized.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := ExtractPhoneDigits(phone)
	if strings.HasPrefix(phone, "+") && digits != "" {
		return "+" + digits
	}
	return digits
}

// MaskPhone keeps the last 4 digits visible for user recognition.
// A leading "+" survives so international numbers stay recognisable.
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := ExtractPhoneDigits(phone)

	prefix := ""
	if strings.HasPrefix(phone, "+") {
		prefix = "+"
	}

	if len(digits) <= 4 {
		return prefix + strings.Repeat("*", len(digits))
	}

	return prefix + strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// ExtractEmailDomain returns the part after the last "@", lowercased.
func ExtractEmailDomain(email string) string {
	email = strings.TrimSpace(email)
	idx := strings.LastIndex(email, "@")
	if idx < 0 || idx == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[idx+1:])
}

// MaskEmail preserves the full domain for user recognition while hiding the
// local part behind its first character.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	idx := strings.LastIndex(email, "@")
	if idx < 0 {
		return email
	}

	local := []rune(email[:idx])
	domain := email[idx+1:]

	switch len(local) {
	case 0:
		return email
	case 1:
		return "*@" + domain
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}
