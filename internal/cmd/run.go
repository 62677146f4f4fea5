// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/aibor/qemuick/internal/qemu"
)

const (
	localConfigFile = ".qemuick-args"
	defaultQemuDir  = "qemu"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

// qemuDir returns the emulator directory. Without explicit directory, it is
// the directory "qemu" next to the running executable.
func qemuDir(flags *flags) (string, error) {
	if flags.QemuDir != "" {
		return flags.QemuDir.String(), nil
	}

	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	return filepath.Join(filepath.Dir(executable), defaultQemuDir), nil
}

func newLaunchRequest(flags *flags) (qemu.LaunchRequest, error) {
	req, err := qemu.NewLaunchRequest(
		flags.Arch,
		flags.ISOPath.String(),
		flags.memorySelection(),
		flags.Switches,
	)
	if err != nil {
		return qemu.LaunchRequest{}, fmt.Errorf("launch request: %w", err)
	}

	if flags.KVM {
		if qemu.KVMAvailableFor(flags.Arch) {
			req = req.WithExtraArgs(qemu.KVMArg)
		} else {
			slog.Warn("KVM not available, running without",
				slog.String("arch", flags.Arch.String()))
		}
	}

	return req.WithExtraArgs(flags.ExtraArgs...), nil
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	dir, err := qemuDir(flags)
	if err != nil {
		return err
	}

	err = qemu.CheckInstallation(dir, qemu.RequiredArchs...)
	if err != nil {
		return fmt.Errorf("check installation: %w", err)
	}

	req, err := newLaunchRequest(flags)
	if err != nil {
		return err
	}

	if flags.DryRun {
		cmd, err := qemu.NewCommand(dir, req)
		if err != nil {
			return fmt.Errorf("new qemu command: %w", err)
		}

		fmt.Fprintln(cfg.Stdout, cmd.String())

		return nil
	}

	launcher := qemu.NewLauncher(dir, cfg.Stdin, cfg.Stdout, cfg.Stderr)

	task, err := launcher.Launch(req)
	if err != nil {
		return fmt.Errorf("launch: %w", err)
	}

	slog.Debug("QEMU command",
		slog.String("command", task.Command().String()))

	err = task.WaitStarted(ctx)
	if err != nil {
		return fmt.Errorf("qemu: %w", err)
	}

	slog.Info("Emulator running", slog.Int("pid", task.PID()))

	if flags.Detach {
		return nil
	}

	select {
	case <-task.Done():
	case <-ctx.Done():
		// The emulator is not terminated. It continues on its own.
		slog.Warn("Stopped waiting for emulator",
			slog.Int("pid", task.PID()),
			slog.Any("reason", context.Cause(ctx)))

		return nil
	}

	err = task.Err()
	if err != nil {
		return fmt.Errorf("qemu: %w", err)
	}

	return nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return 0
	}

	exitCode := -1

	var exitErr *qemu.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode > 0 {
			exitCode = exitErr.ExitCode
		}
	}

	// Argument errors have been printed with usage already.
	if errors.Is(err, &ParseArgsError{}) {
		return exitCode
	}

	fmt.Fprintf(stderr, "Error [%s]: %v\n", name, err)

	if errors.Is(err, &qemu.DependencyError{}) {
		fmt.Fprintln(stderr, "Please make sure QEMU is installed "+
			"in the qemu directory (see -qemu-dir).")
	}

	return exitCode
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.logLevel())

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			return handleRunError(err, cfg.Stderr)
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return 0
	}

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err, cfg.Stderr)
	}

	return 0
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
