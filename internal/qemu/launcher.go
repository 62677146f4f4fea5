// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"io"

	"golang.org/x/sync/errgroup"
)

// Launcher starts emulator processes in the background.
//
// Each launch is independent. The only state shared between them is the
// read-only QEMU directory and the standard streams the processes inherit.
type Launcher struct {
	dir    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	workers errgroup.Group
}

// NewLauncher creates a new [Launcher] for the emulator binaries in the given
// QEMU directory. Launched processes inherit the given streams. Nil streams
// are connected to the null device.
func NewLauncher(
	dir string,
	stdin io.Reader,
	stdout, stderr io.Writer,
) *Launcher {
	return &Launcher{
		dir:    dir,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Dir returns the QEMU directory of the launcher.
func (l *Launcher) Dir() string {
	return l.dir
}

// Launch builds the [Command] for the given [LaunchRequest] and starts it in
// the background.
//
// Invalid requests are rejected with a [*ValidationError] and no process is
// started. Otherwise the returned [Task] reports the start result and exit
// of the process.
func (l *Launcher) Launch(req LaunchRequest) (*Task, error) {
	cmd, err := NewCommand(l.dir, req)
	if err != nil {
		return nil, err
	}

	return l.Start(cmd), nil
}

// Start starts the given [Command] in the background. It does not block.
func (l *Launcher) Start(cmd *Command) *Task {
	task := newTask(cmd)

	l.workers.Go(func() error {
		return task.run(l.stdin, l.stdout, l.stderr)
	})

	return task
}

// Wait blocks until all started processes exited. It returns the first
// non-nil [Task.Err].
func (l *Launcher) Wait() error {
	return l.workers.Wait() //nolint:wrapcheck
}
