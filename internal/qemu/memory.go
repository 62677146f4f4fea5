// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/docker/go-units"
)

// MinMemoryMB is the lowest memory size in MB a guest can be launched with.
const MinMemoryMB = 128

// Preset is one of the fixed memory sizes. Its value is the size in MB.
type Preset uint64

// Memory presets.
const (
	PresetNone Preset = 0
	Preset1G   Preset = 1024
	Preset2G   Preset = 2048
	Preset4G   Preset = 4096
)

var presetNames = map[Preset]string{
	Preset1G: "1G",
	Preset2G: "2G",
	Preset4G: "4G",
}

// Presets returns all memory presets in ascending order.
func Presets() []Preset {
	return []Preset{Preset1G, Preset2G, Preset4G}
}

func (p Preset) String() string {
	return presetNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p Preset) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the preset
// names as well as their MB values.
func (p *Preset) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))

	for _, preset := range Presets() {
		if strings.EqualFold(s, preset.String()) ||
			s == strconv.FormatUint(uint64(preset), 10) {
			*p = preset
			return nil
		}
	}

	return fmt.Errorf("%w: unknown preset %q", ErrInvalidMemory, s)
}

// MemorySelection is the choice between no memory option, one of the [Preset]s
// and a custom size given as text.
type MemorySelection struct {
	preset Preset
	custom string
	kind   selectionKind
}

type selectionKind int

const (
	selectionNone selectionKind = iota
	selectionPreset
	selectionCustom
)

// PresetMemory returns a [MemorySelection] for the given [Preset]. Passing
// [PresetNone] is the same as no selection.
func PresetMemory(preset Preset) MemorySelection {
	if preset == PresetNone {
		return MemorySelection{}
	}

	return MemorySelection{preset: preset, kind: selectionPreset}
}

// CustomMemory returns a [MemorySelection] for the given user input. The
// input is parsed on [MemorySelection.MB] with [ParseMemory].
func CustomMemory(input string) MemorySelection {
	return MemorySelection{custom: input, kind: selectionCustom}
}

// IsSelected returns true if any memory option was chosen.
func (m MemorySelection) IsSelected() bool {
	return m.kind != selectionNone
}

// MB resolves the selection into the memory size in MB.
func (m MemorySelection) MB() (uint64, error) {
	switch m.kind {
	case selectionPreset:
		if _, known := presetNames[m.preset]; !known {
			return 0, fmt.Errorf("%w: unknown preset %d", ErrInvalidMemory, m.preset)
		}

		return uint64(m.preset), nil
	case selectionCustom:
		return ParseMemory(m.custom)
	default:
		return 0, ErrMissingMemorySelection
	}
}

// ParseMemory parses the given memory size into MB.
//
// A plain integer is taken as MB. A number with unit suffix like "2G" or
// "512MiB" is parsed with [units.RAMInBytes] and must be a whole number of
// MB. The result must not be less than [MinMemoryMB].
func ParseMemory(input string) (uint64, error) {
	input = strings.TrimSpace(input)

	memory, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		memory, err = parseMemoryWithUnit(input)
		if err != nil {
			return 0, err
		}
	}

	if memory < MinMemoryMB {
		return 0, fmt.Errorf("%w: %d < %d", ErrInvalidMemory, memory, MinMemoryMB)
	}

	return memory, nil
}

func parseMemoryWithUnit(input string) (uint64, error) {
	// Plain numbers that did not parse, like "-1" or overflowing ones, must
	// not reach the unit parser, which would take them as bytes.
	if input == "" || isDigit(input[len(input)-1]) {
		return 0, fmt.Errorf("%w: %q is not a positive integer",
			ErrInvalidMemory, input)
	}

	bytes, err := units.RAMInBytes(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMemory, err)
	}

	if bytes <= 0 || bytes%units.MiB != 0 {
		return 0, fmt.Errorf("%w: %q is not a whole number of MB",
			ErrInvalidMemory, input)
	}

	return uint64(bytes / units.MiB), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
