// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aibor/qemuick/internal/sys"
)

// LaunchRequest describes a single emulator launch. It is a plain value that
// is created fresh for each launch attempt.
type LaunchRequest struct {
	// Guest architecture. Selects the emulator binary.
	Arch sys.Arch

	// Path to the ISO image the guest boots from.
	ISOPath string

	// Memory for the guest in MB.
	MemoryMB uint64

	// Additional arguments passed verbatim to the emulator after the
	// essential ones.
	ExtraArgs []string
}

// NewLaunchRequest creates a validated [LaunchRequest] from user input.
//
// The switches string is split on white space into [LaunchRequest.ExtraArgs].
// An empty ISO path is reported first, independent of the other inputs.
func NewLaunchRequest(
	arch sys.Arch,
	isoPath string,
	memory MemorySelection,
	switches string,
) (LaunchRequest, error) {
	if isoPath == "" {
		return LaunchRequest{}, &ValidationError{Field: "iso", Err: ErrMissingISO}
	}

	memoryMB, err := memory.MB()
	if err != nil {
		return LaunchRequest{}, &ValidationError{Field: "memory", Err: err}
	}

	req := LaunchRequest{
		Arch:      arch,
		ISOPath:   isoPath,
		MemoryMB:  memoryMB,
		ExtraArgs: SplitSwitches(switches),
	}

	err = req.Validate()
	if err != nil {
		return LaunchRequest{}, err
	}

	return req, nil
}

// WithExtraArgs returns a copy of the request with the given arguments
// appended to [LaunchRequest.ExtraArgs].
func (r LaunchRequest) WithExtraArgs(args ...string) LaunchRequest {
	r.ExtraArgs = append(slices.Clone(r.ExtraArgs), args...)
	return r
}

// Validate checks the invariants of the request.
func (r LaunchRequest) Validate() error {
	if r.ISOPath == "" {
		return &ValidationError{Field: "iso", Err: ErrMissingISO}
	}

	if r.MemoryMB < MinMemoryMB {
		return &ValidationError{Field: "memory", Err: fmt.Errorf(
			"%w: %d < %d", ErrInvalidMemory, r.MemoryMB, MinMemoryMB,
		)}
	}

	if !r.Arch.IsSupported() {
		return &ValidationError{Field: "arch", Err: fmt.Errorf(
			"%w: %q", sys.ErrArchNotSupported, r.Arch,
		)}
	}

	return nil
}

// SplitSwitches splits the given switches string on white space. An empty or
// blank string results in an empty list.
func SplitSwitches(switches string) []string {
	return strings.Fields(switches)
}
