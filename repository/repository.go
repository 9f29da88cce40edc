// Package repository implements the owner-scoped store operations. Every
// method takes the authenticated owner id explicitly; nothing in this
// package reads ambient request state.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an owner-scoped lookup misses. A record owned
// by a different user is indistinguishable from a missing one.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
