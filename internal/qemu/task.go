// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
)

// Task is a single emulator process launched by a [Launcher].
//
// Its state is written once by the background worker before the respective
// channel is closed. Accessors must only be called after the channel they
// document is closed.
type Task struct {
	cmd *Command

	started chan struct{}
	done    chan struct{}

	pid      int
	startErr error
	err      error
}

func newTask(cmd *Command) *Task {
	return &Task{
		cmd:     cmd,
		started: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Command returns the [Command] the task runs.
func (t *Task) Command() *Command {
	return t.cmd
}

// Started returns a channel that is closed once the start attempt of the
// process resolved. [Task.StartErr] and [Task.PID] are valid then.
func (t *Task) Started() <-chan struct{} {
	return t.started
}

// Done returns a channel that is closed once the process exited or failed to
// start. [Task.Err] is valid then.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// StartErr returns the [*StartError] if the process failed to start.
func (t *Task) StartErr() error {
	return t.startErr
}

// PID returns the process ID of the started emulator.
func (t *Task) PID() int {
	return t.pid
}

// Err returns nil if the emulator exited successfully. Otherwise it returns
// the [*StartError] or an [*ExitError].
func (t *Task) Err() error {
	return t.err
}

// WaitStarted blocks until the start attempt resolved and returns
// [Task.StartErr]. If the context is done first, its error is returned. The
// process is not affected by that.
func (t *Task) WaitStarted(ctx context.Context) error {
	select {
	case <-t.started:
		return t.startErr
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}

// Wait blocks until the process exited and returns [Task.Err]. If the context
// is done first, its error is returned. The process keeps running then.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}

// run starts the process and waits for it to exit. The process inherits the
// given standard streams.
func (t *Task) run(stdin io.Reader, stdout, stderr io.Writer) error {
	defer close(t.done)

	//nolint:gosec,noctx
	cmd := exec.Command(t.cmd.Executable(), t.cmd.argsWithoutExecutable()...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Start()
	if err != nil {
		t.startErr = &StartError{Executable: t.cmd.Executable(), Err: err}
		t.err = t.startErr

		close(t.started)

		return t.err
	}

	t.pid = cmd.Process.Pid

	close(t.started)

	slog.Debug("Emulator started",
		slog.String("executable", t.cmd.Executable()),
		slog.Int("pid", t.pid))

	err = cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			t.err = &ExitError{ExitCode: exitErr.ExitCode(), Err: err}
		} else {
			t.err = fmt.Errorf("wait: %w", err)
		}
	}

	slog.Debug("Emulator exited",
		slog.Int("pid", t.pid),
		slog.Any("error", t.err))

	return t.err
}
