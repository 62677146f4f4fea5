// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and launching QEMU system
// emulator commands that boot a guest from an ISO image.
//
// The emulator binaries are expected in a single directory and named
// "qemu-system-<arch>" (with ".exe" suffix on Windows). Use
// [CheckInstallation] once on startup to make sure the required ones are
// present.
//
// A [LaunchRequest] describes a single launch. It is turned into a [Command]
// which is started by a [Launcher] in the background. The returned [Task]
// reports start failure and exit of the emulator.
package qemu
