// SPDX-License-Identifier: Apache-2.0

// Package validators holds the input validation predicates applied during
// user registration. Rules are deliberately strict and mirror the
// user-visible messages surfaced by the registration form.
package validators

// passwordSymbols is the only symbol set a password may contain,
// and it must contain at least one of them.
const passwordSymbols = "@$!%*?&"

// Phone reports whether phone is a valid contact number:
// exactly 10 characters, all decimal digits.
func Phone(phone string) error {
	if len(phone) != 10 {
		return ErrInvalidPhone
	}

	for _, c := range phone {
		if c < '0' || c > '9' {
			return ErrInvalidPhone
		}
	}

	return nil
}

// Password reports whether password satisfies the registration policy:
// length of at least 8, at least one letter, at least one digit, at least one
// symbol from "@$!%*?&", and no characters outside letters, digits, and that
// symbol set.
//
// Equivalent to the predicate
// ^(?=.*[A-Za-z])(?=.*\d)(?=.*[@$!%*?&])[A-Za-z\d@$!%*?&]{8,}$
// expressed without lookaheads, which Go's regexp engine does not support.
func Password(password string) error {
	if len(password) < 8 {
		return ErrInvalidPassword
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case isPasswordSymbol(c):
			hasSymbol = true
		default:
			return ErrInvalidPassword
		}
	}

	if !hasLetter || !hasDigit || !hasSymbol {
		return ErrInvalidPassword
	}

	return nil
}

func isPasswordSymbol(c rune) bool {
	for _, s := range passwordSymbols {
		if c == s {
			return true
		}
	}

	return false
}
