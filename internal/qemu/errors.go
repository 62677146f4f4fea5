// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingISO is returned if no ISO image path is given.
	ErrMissingISO = errors.New("no ISO image path given")

	// ErrInvalidMemory is returned if the memory size is not a valid
	// number of MB or below [MinMemoryMB].
	ErrInvalidMemory = errors.New("invalid memory size")

	// ErrMissingMemorySelection is returned if no memory option was chosen.
	ErrMissingMemorySelection = errors.New("no memory size selected")

	// ErrArgumentCollision is returned if two [Argument]s are considered equal.
	ErrArgumentCollision = errors.New("colliding args")
)

// ValidationError indicates invalid user input for a launch. The launch does
// not proceed. It wraps one of [ErrMissingISO], [ErrInvalidMemory],
// [ErrMissingMemorySelection] or [sys.ErrArchNotSupported].
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the [error] interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DependencyError is returned if the QEMU installation lacks a required
// directory or executable. It is not recoverable.
type DependencyError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing dependency %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*DependencyError) Is(other error) bool {
	_, ok := other.(*DependencyError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *DependencyError) Unwrap() error {
	return e.Err
}

// StartError is returned if the emulator process could not be started.
type StartError struct {
	Executable string
	Err        error
}

// Error implements the [error] interface.
func (e *StartError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Executable, e.Err)
}

// Is implements the [errors.Is] interface.
func (*StartError) Is(other error) bool {
	_, ok := other.(*StartError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StartError) Unwrap() error {
	return e.Err
}

// ExitError is returned if the emulator process exited with an error.
type ExitError struct {
	ExitCode int
	Err      error
}

// Error implements the [error] interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("emulator exited with code %d: %v", e.ExitCode, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ExitError) Is(other error) bool {
	_, ok := other.(*ExitError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ExitError) Unwrap() error {
	return e.Err
}
