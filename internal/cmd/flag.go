// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/qemuick/internal/qemu"
	"github.com/aibor/qemuick/internal/sys"
)

const (
	name = "qemuick"

	usageMessage = `Usage of 'qemuick':
    qemuick [flags...] [switches...]

Boot an ISO image with the emulator for the given architecture:
	qemuick -arch=x86_64 -iso=/path/to/image.iso -preset=2G

Pass additional switches to the emulator verbatim:
	qemuick -iso=image.iso -memory=768 -switches="-cpu host -enable-kvm"
	qemuick -iso=image.iso -memory=1.5GiB -- -cpu host -enable-kvm

All qemuick flags can also be provided via environment variable QEMUICK_ARGS:
	QEMUICK_ARGS="-qemu-dir=/opt/qemu -debug" qemuick -iso=image.iso -preset=1G

All qemuick flags can also be provided via file ./.qemuick-args, with one
argument per line.
`
)

type flags struct {
	Arch      sys.Arch
	ISOPath   sys.FilePath
	QemuDir   sys.FilePath
	Preset    qemu.Preset
	Memory    string
	MemorySet bool
	Switches  string
	ExtraArgs []string
	KVM       bool
	Detach    bool
	DryRun    bool
	Debug     bool
	Version   bool
}

func (f *flags) memorySelection() qemu.MemorySelection {
	if f.MemorySet {
		return qemu.CustomMemory(f.Memory)
	}

	return qemu.PresetMemory(f.Preset)
}

func (f *flags) logLevel() slog.Level {
	if f.Debug {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	f := &flags{
		Arch: sys.X86_64,
	}

	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usageMessage)
		fmt.Fprintln(output, "\nFlags:")
		flagSet.PrintDefaults()
	}

	fail := func(msg string, err error) error {
		err = &ParseArgsError{msg: msg, err: err}
		fmt.Fprintln(output, err.Error())

		flagSet.Usage()

		return err
	}

	flagSet.TextVar(
		&f.Arch,
		"arch",
		f.Arch,
		"guest architecture: "+fmt.Sprint(sys.Archs()),
	)

	flagSet.TextVar(
		&f.ISOPath,
		"iso",
		f.ISOPath,
		"path to the ISO image to boot from",
	)

	flagSet.TextVar(
		&f.QemuDir,
		"qemu-dir",
		f.QemuDir,
		"directory containing the qemu-system-* executables "+
			"(default \"qemu\" next to the qemuick executable)",
	)

	flagSet.TextVar(
		&f.Preset,
		"preset",
		f.Preset,
		"memory preset: "+fmt.Sprint(qemu.Presets()),
	)

	flagSet.Func(
		"memory",
		"custom memory size in MB or with unit (e.g. 768, 1.5GiB). "+
			"Mutually exclusive with -preset",
		func(s string) error {
			f.Memory = s
			f.MemorySet = true

			return nil
		},
	)

	flagSet.StringVar(
		&f.Switches,
		"switches",
		f.Switches,
		"additional emulator switches, split at whitespace",
	)

	flagSet.BoolVar(
		&f.KVM,
		"kvm",
		f.KVM,
		"enable KVM acceleration if the host supports it for the guest arch",
	)

	flagSet.BoolVar(
		&f.Detach,
		"detach",
		f.Detach,
		"return once the emulator is started instead of waiting for its exit",
	)

	flagSet.BoolVar(
		&f.DryRun,
		"dry-run",
		f.DryRun,
		"print the emulator command and exit without starting it",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := flagSet.Parse(args)
	if err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.MemorySet && f.Preset != qemu.PresetNone {
		return nil, fail("use either -preset or -memory", nil)
	}

	// All positional arguments are passed to the emulator after the switches.
	f.ExtraArgs = flagSet.Args()

	return f, nil
}
