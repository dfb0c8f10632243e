package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	phoneRegexp = regexp.MustCompile(`^[679]\d{8}$`)
	upperRegexp = regexp.MustCompile(`[A-Z]`)
	lowerRegexp = regexp.MustCompile(`[a-z]`)
	digitRegexp = regexp.MustCompile(`\d`)
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidPhone reports whether phone has 9 digits and starts with 6, 7 or 9.
func ValidPhone(phone string) bool {
	return phoneRegexp.MatchString(phone)
}

// ValidPassword reports whether a plaintext password has at least 8
// characters including an upper-case letter, a lower-case letter and a digit.
func ValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= 8 &&
		upperRegexp.MatchString(password) &&
		lowerRegexp.MatchString(password) &&
		digitRegexp.MatchString(password)
}

// ValidName reports whether a person name is non-blank.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ValidEmail reports whether the address has a local part, an @ and a
// dotted domain.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ValidBirthDate reports whether the birth date is not in the future and
// yields an age between 14 and 100 years.
func ValidBirthDate(birthDate time.Time) bool {
	now := time.Now()
	if birthDate.After(now) {
		return false
	}
	age := Age(birthDate, now)
	return age >= 14 && age <= 100
}

// Age returns whole years elapsed between birthDate and ref.
func Age(birthDate, ref time.Time) int {
	years := ref.Year() - birthDate.Year()
	anniversary := birthDate.AddDate(years, 0, 0)
	if anniversary.After(ref) {
		years--
	}
	return years
}
