// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package qemu

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func checkExecutable(path string) error {
	err := unix.Access(path, unix.X_OK)
	if err != nil {
		return fmt.Errorf("not executable: %w", err)
	}

	return nil
}
