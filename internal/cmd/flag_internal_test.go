// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/aibor/qemuick/internal/qemu"
	"github.com/aibor/qemuick/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedFlags *flags
		expecterErr   error
	}{
		{
			name: "help",
			args: []string{
				"-help",
			},
			expecterErr: ErrHelp,
		},
		{
			name: "version",
			args: []string{
				"-version",
			},
			expectedFlags: &flags{
				Arch:      sys.X86_64,
				ExtraArgs: []string{},
				Version:   true,
			},
		},
		{
			name: "defaults",
			args: []string{
				"-iso=image.iso",
			},
			expectedFlags: &flags{
				Arch:      sys.X86_64,
				ISOPath:   sys.FilePath(sys.MustAbsolutePath(t, "image.iso")),
				ExtraArgs: []string{},
			},
		},
		{
			name: "all flags",
			args: []string{
				"-arch", "riscv64",
				"-iso=/tmp/test.iso",
				"-qemu-dir=/opt/qemu",
				"-preset=2G",
				"-switches=-cpu host -enable-kvm",
				"-kvm",
				"-detach",
				"-dry-run",
				"-debug",
			},
			expectedFlags: &flags{
				Arch:      sys.RISCV64,
				ISOPath:   "/tmp/test.iso",
				QemuDir:   "/opt/qemu",
				Preset:    qemu.Preset2G,
				Switches:  "-cpu host -enable-kvm",
				ExtraArgs: []string{},
				KVM:       true,
				Detach:    true,
				DryRun:    true,
				Debug:     true,
			},
		},
		{
			name: "custom memory",
			args: []string{
				"-iso=/tmp/test.iso",
				"-memory=768",
			},
			expectedFlags: &flags{
				Arch:      sys.X86_64,
				ISOPath:   "/tmp/test.iso",
				Memory:    "768",
				MemorySet: true,
				ExtraArgs: []string{},
			},
		},
		{
			name: "empty custom memory is still a selection",
			args: []string{
				"-memory=",
			},
			expectedFlags: &flags{
				Arch:      sys.X86_64,
				MemorySet: true,
				ExtraArgs: []string{},
			},
		},
		{
			name: "later flags win",
			args: []string{
				"-arch=arm",
				"-preset=1G",
				"-arch=aarch64",
				"-preset=4096",
			},
			expectedFlags: &flags{
				Arch:      sys.AARCH64,
				Preset:    qemu.Preset4G,
				ExtraArgs: []string{},
			},
		},
		{
			name: "positional args",
			args: []string{
				"-iso=/tmp/test.iso",
				"-preset=1G",
				"--",
				"-cpu", "host",
				"-display", "none",
			},
			expectedFlags: &flags{
				Arch:      sys.X86_64,
				ISOPath:   "/tmp/test.iso",
				Preset:    qemu.Preset1G,
				ExtraArgs: []string{"-cpu", "host", "-display", "none"},
			},
		},
		{
			name: "preset and memory",
			args: []string{
				"-preset=1G",
				"-memory=512",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "unsupported arch",
			args: []string{
				"-arch=m68k",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "unknown preset",
			args: []string{
				"-preset=3G",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "empty iso path",
			args: []string{
				"-iso=",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "unknown flag",
			args: []string{
				"-kernel=/boot/this",
			},
			expecterErr: &ParseArgsError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseArgs(tt.args, io.Discard)
			require.ErrorIs(t, err, tt.expecterErr)

			if tt.expecterErr != nil {
				return
			}

			assert.Equal(t, tt.expectedFlags, flags)
		})
	}
}

func TestParseArgs_Usage(t *testing.T) {
	var output bytes.Buffer

	_, err := parseArgs([]string{"-preset=1G", "-memory=512"}, &output)
	require.ErrorIs(t, err, &ParseArgsError{})

	assert.Contains(t, output.String(), "use either -preset or -memory")
	assert.Contains(t, output.String(), usageMessage)
	assert.Contains(t, output.String(), "-qemu-dir")
}

func TestFlags_MemorySelection(t *testing.T) {
	tests := []struct {
		name     string
		flags    flags
		expected qemu.MemorySelection
	}{
		{
			name:     "nothing",
			expected: qemu.MemorySelection{},
		},
		{
			name:     "preset",
			flags:    flags{Preset: qemu.Preset2G},
			expected: qemu.PresetMemory(qemu.Preset2G),
		},
		{
			name:     "custom",
			flags:    flags{Memory: "768", MemorySet: true},
			expected: qemu.CustomMemory("768"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.flags.memorySelection())
		})
	}
}

func TestFlags_LogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, (&flags{}).logLevel())
	assert.Equal(t, slog.LevelDebug, (&flags{Debug: true}).logLevel())
}
