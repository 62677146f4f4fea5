// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"path/filepath"
	"runtime"

	"github.com/aibor/qemuick/internal/sys"
)

const executablePrefix = "qemu-system-"

// RequiredArchs are the architectures whose emulator binaries must be present
// in the QEMU directory, see [CheckInstallation].
var RequiredArchs = []sys.Arch{sys.X86_64, sys.I386}

// ExecutableName returns the file name of the emulator binary for the given
// architecture.
func ExecutableName(arch sys.Arch) string {
	return executableName(arch, runtime.GOOS)
}

func executableName(arch sys.Arch, goos string) string {
	name := executablePrefix + arch.String()
	if goos == "windows" {
		name += ".exe"
	}

	return name
}

// ExecutablePath returns the path of the emulator binary for the given
// architecture in the given QEMU directory. It does not check if the file
// exists.
func ExecutablePath(dir string, arch sys.Arch) string {
	return filepath.Join(dir, ExecutableName(arch))
}
