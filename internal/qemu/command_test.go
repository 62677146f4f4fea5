// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/aibor/qemuick/internal/qemu"
	"github.com/aibor/qemuick/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	const dir = "/opt/qemu"

	tests := []struct {
		name        string
		req         qemu.LaunchRequest
		expected    []string
		expectedErr error
	}{
		{
			name: "x86_64 without switches",
			req: qemu.LaunchRequest{
				Arch:     sys.X86_64,
				ISOPath:  "/tmp/test.iso",
				MemoryMB: 2048,
			},
			expected: []string{
				qemu.ExecutablePath(dir, sys.X86_64),
				"-m", "2048",
				"-cdrom", "/tmp/test.iso",
				"-boot", "d",
			},
		},
		{
			name: "switches appended verbatim",
			req: qemu.LaunchRequest{
				Arch:      sys.RISCV64,
				ISOPath:   "/isos/my disk.iso",
				MemoryMB:  4096,
				ExtraArgs: []string{"-cpu", "host", "-boot", "c"},
			},
			expected: []string{
				qemu.ExecutablePath(dir, sys.RISCV64),
				"-m", "4096",
				"-cdrom", "/isos/my disk.iso",
				"-boot", "d",
				"-cpu", "host",
				"-boot", "c",
			},
		},
		{
			name: "invalid memory",
			req: qemu.LaunchRequest{
				Arch:     sys.X86_64,
				ISOPath:  "/tmp/test.iso",
				MemoryMB: 64,
			},
			expectedErr: qemu.ErrInvalidMemory,
		},
		{
			name: "missing iso",
			req: qemu.LaunchRequest{
				Arch:     sys.X86_64,
				MemoryMB: 1024,
			},
			expectedErr: qemu.ErrMissingISO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := qemu.NewCommand(dir, tt.req)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				assert.Nil(t, cmd)
				return
			}

			assert.Equal(t, tt.expected, cmd.Args())
			assert.Equal(t, tt.expected[0], cmd.Executable())
		})
	}
}

func TestNewCommand_Deterministic(t *testing.T) {
	req := qemu.LaunchRequest{
		Arch:      sys.PPC,
		ISOPath:   "/tmp/test.iso",
		MemoryMB:  512,
		ExtraArgs: []string{"-nographic"},
	}

	first, err := qemu.NewCommand("/opt/qemu", req)
	require.NoError(t, err)

	second, err := qemu.NewCommand("/opt/qemu", req)
	require.NoError(t, err)

	assert.Equal(t, first.Args(), second.Args())
	assert.Equal(t, first, second)
}

func TestCommand_ArgsReturnsCopy(t *testing.T) {
	cmd, err := qemu.NewCommand("/opt/qemu", qemu.LaunchRequest{
		Arch:     sys.X86_64,
		ISOPath:  "/tmp/test.iso",
		MemoryMB: 2048,
	})
	require.NoError(t, err)

	args := cmd.Args()
	args[2] = "9999"

	assert.Equal(t, "2048", cmd.Args()[2])
}

func TestCommand_String(t *testing.T) {
	cmd, err := qemu.NewCommand("/opt/qemu", qemu.LaunchRequest{
		Arch:      sys.X86_64,
		ISOPath:   "/isos/my disk.iso",
		MemoryMB:  2048,
		ExtraArgs: []string{"-name", ""},
	})
	require.NoError(t, err)

	expected := qemu.ExecutablePath("/opt/qemu", sys.X86_64) +
		` -m 2048 -cdrom "/isos/my disk.iso" -boot d -name ""`

	assert.Equal(t, expected, cmd.String())
}
