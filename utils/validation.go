package utils

import (
	"regexp"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// ValidateEmail checks the general shape of an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone checks for an Israeli-style 10 digit phone number
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ClampPercent bounds a focal point coordinate to [0,100]
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
