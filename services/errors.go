package services

import "github.com/pkg/errors"

var (
	// ErrValidation marks a draft that failed required-field validation;
	// submission is blocked and the modal stays open.
	ErrValidation = errors.New("validation failed")

	// ErrCounterBound marks a counter change that would break
	// available >= deployed >= defective >= 0. The change is a no-op.
	ErrCounterBound = errors.New("counter change violates available >= deployed >= defective >= 0")

	// ErrNotFound marks a record id that is not in the last-fetched set.
	ErrNotFound = errors.New("record not in the current list")

	// ErrNoModal marks a save or confirm issued with no modal open.
	ErrNoModal = errors.New("no modal open")
)
