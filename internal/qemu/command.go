// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Command is a single QEMU invocation: the emulator binary and its arguments.
type Command struct {
	executable string
	args       []string
}

// NewCommand builds the [Command] for the given [LaunchRequest]. The emulator
// binary is looked up in the given QEMU directory.
//
// The result only depends on its inputs. Calling it twice with the same
// arguments returns equal commands.
func NewCommand(dir string, req LaunchRequest) (*Command, error) {
	err := req.Validate()
	if err != nil {
		return nil, err
	}

	args, err := BuildArgumentStrings(req.arguments())
	if err != nil {
		return nil, fmt.Errorf("build arguments: %w", err)
	}

	// Extra args are passed verbatim and are not subject to collision checks.
	args = append(args, req.ExtraArgs...)

	return &Command{
		executable: ExecutablePath(dir, req.Arch),
		args:       args,
	}, nil
}

// arguments compiles the essential argument list for the emulator.
func (r LaunchRequest) arguments() []Argument {
	return []Argument{
		UniqueArg("m", strconv.FormatUint(r.MemoryMB, 10)),
		UniqueArg("cdrom", r.ISOPath),
		// Boot from the CD-ROM.
		UniqueArg("boot", "d"),
	}
}

// Executable returns the path of the emulator binary.
func (c *Command) Executable() string {
	return c.executable
}

// Args returns the complete argument vector starting with the executable.
func (c *Command) Args() []string {
	return append([]string{c.executable}, c.args...)
}

// String returns the argument vector joined by spaces. Arguments containing
// white space are quoted.
func (c *Command) String() string {
	args := c.Args()
	quoted := make([]string, 0, len(args))

	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'") {
			arg = strconv.Quote(arg)
		}

		quoted = append(quoted, arg)
	}

	return strings.Join(quoted, " ")
}

// argsWithoutExecutable returns the arguments as passed to [exec.Command].
func (c *Command) argsWithoutExecutable() []string {
	return slices.Clone(c.args)
}
