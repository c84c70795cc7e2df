package service

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrWeakPassword      = errors.New("password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	ErrBadUsernameLength = errors.New("username must be between 3 and 20 characters")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = "@$!%*?&"

func validateRegistration(input RegisterInput) error {
	if !emailPattern.MatchString(input.Email) {
		return ErrInvalidEmail
	}
	if !passwordMeetsCriteria(input.Password) {
		return ErrWeakPassword
	}
	if len(input.Username) < 3 || len(input.Username) > 20 {
		return ErrBadUsernameLength
	}
	return nil
}

func passwordMeetsCriteria(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}
