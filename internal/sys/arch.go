// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"slices"
)

// Arch is a guest CPU architecture. Its string form is the suffix QEMU uses
// for the matching qemu-system-* binary.
type Arch string

// Supported guest architectures.
const (
	X86_64  Arch = "x86_64"
	I386    Arch = "i386"
	ARM     Arch = "arm"
	AARCH64 Arch = "aarch64"
	MIPS    Arch = "mips"
	PPC     Arch = "ppc"
	SPARC   Arch = "sparc"
	RISCV64 Arch = "riscv64"
)

var supportedArchs = []Arch{
	X86_64,
	I386,
	ARM,
	AARCH64,
	MIPS,
	PPC,
	SPARC,
	RISCV64,
}

// Archs returns all supported guest architectures in their display order.
func Archs() []Arch {
	return slices.Clone(supportedArchs)
}

func (a Arch) String() string {
	return string(a)
}

// IsSupported returns true if the architecture is one of [Archs].
func (a Arch) IsSupported() bool {
	return slices.Contains(supportedArchs, a)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Arch) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Arch) UnmarshalText(text []byte) error {
	arch := Arch(text)
	if !arch.IsSupported() {
		return fmt.Errorf("%w: %s", ErrArchNotSupported, arch)
	}

	*a = arch

	return nil
}

var goArchs = map[Arch]string{
	X86_64:  "amd64",
	I386:    "386",
	ARM:     "arm",
	AARCH64: "arm64",
	MIPS:    "mips",
	RISCV64: "riscv64",
}

// GOARCH returns the Go name of the architecture. It is empty if Go has no
// matching port.
func (a Arch) GOARCH() string {
	return goArchs[a]
}
