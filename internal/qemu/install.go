// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"log/slog"

	"github.com/aibor/qemuick/internal/sys"
)

// CheckInstallation checks that the given QEMU directory exists and contains
// the emulator binaries for all the given architectures. It returns a
// [*DependencyError] for the first missing piece.
//
// Binaries of other architectures are not checked. If they are missing, the
// launch fails with [*StartError].
func CheckInstallation(dir string, archs ...sys.Arch) error {
	err := sys.ValidateDirPath(dir)
	if err != nil {
		return &DependencyError{Path: dir, Err: err}
	}

	for _, arch := range archs {
		path := ExecutablePath(dir, arch)

		err := sys.ValidateFilePath(path)
		if err != nil {
			return &DependencyError{Path: path, Err: err}
		}

		err = checkExecutable(path)
		if err != nil {
			return &DependencyError{Path: path, Err: err}
		}

		slog.Debug("Found emulator", slog.String("path", path))
	}

	return nil
}
