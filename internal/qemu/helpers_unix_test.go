// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package qemu_test

import (
	"os"
	"strings"
	"testing"

	"github.com/aibor/qemuick/internal/qemu"
	"github.com/aibor/qemuick/internal/sys"
	"github.com/stretchr/testify/require"
)

// fakeEmulatorScript records its arguments one per line in a file next to
// itself.
const fakeEmulatorScript = `#!/bin/sh
printf '%s\n' "$@" > "$0.args"
`

// writeFakeEmulator writes a shell script as emulator binary for the given
// architecture into dir. The script body is appended to
// [fakeEmulatorScript].
func writeFakeEmulator(
	tb testing.TB,
	dir string,
	arch sys.Arch,
	body string,
	mode os.FileMode,
) string {
	tb.Helper()

	path := qemu.ExecutablePath(dir, arch)
	err := os.WriteFile(path, []byte(fakeEmulatorScript+body), mode)
	require.NoError(tb, err)

	// WriteFile does not change the mode of existing files and the umask
	// applies on creation.
	require.NoError(tb, os.Chmod(path, mode))

	return path
}

// recordedArgs returns the arguments recorded by the fake emulator at path.
func recordedArgs(tb testing.TB, path string) []string {
	tb.Helper()

	content, err := os.ReadFile(path + ".args")
	require.NoError(tb, err)

	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}
