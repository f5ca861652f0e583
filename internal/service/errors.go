// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// Registration failures, surfaced to the user in this order.
	ErrEmailTaken      = errors.New("email already registered")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrPhoneTaken      = errors.New("phone number already registered")
	ErrInvalidPhone    = errors.New("phone number must be exactly 10 digits")
	ErrInvalidPassword = errors.New("password must be at least 8 characters and include letters, numbers & symbols")

	// ErrInvalidCredentials is the single login failure: unknown email and
	// wrong password are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMedicineNotOwned is returned when a reminder references a medicine
	// that does not exist or belongs to a different user.
	ErrMedicineNotOwned = errors.New("medicine does not exist or is not owned by the user")
)
