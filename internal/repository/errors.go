// Package repository contains the data access layer, separated from HTTP
// handlers. Sentinel errors defined here let handlers translate storage
// failures into concrete HTTP statuses (404 for missing records, 409 for
// duplicate emails) without inspecting driver error strings themselves.
package repository

import "errors"

// ErrEmailExists is returned when a user insert hits the unique email index.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a user lookup or delete matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrSpaceNotFound is returned when a space cannot be found. Booking
// creation relies on it to reject reservations of unknown spaces.
var ErrSpaceNotFound = errors.New("space not found")
