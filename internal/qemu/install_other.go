// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package qemu

// checkExecutable is a no-op. There is no execute permission bit to check.
func checkExecutable(string) error {
	return nil
}
