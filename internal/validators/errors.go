// SPDX-License-Identifier: Apache-2.0

package validators

import "errors"

var (
	// ErrInvalidPhone indicates a phone number that is not exactly
	// 10 decimal digits.
	ErrInvalidPhone = errors.New("phone number must be exactly 10 digits")

	// ErrInvalidPassword indicates a password that fails the registration
	// policy (length, letter, digit, and symbol requirements).
	ErrInvalidPassword = errors.New("password does not satisfy the password policy")
)
