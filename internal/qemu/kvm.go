// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"os"
	"runtime"

	"github.com/aibor/qemuick/internal/sys"
)

const kvmDevice = "/dev/kvm"

// KVMArg is the emulator switch enabling KVM acceleration.
const KVMArg = "-enable-kvm"

// KVMAvailableFor checks if KVM support is available for the given guest
// architecture. It requires the guest to match the host architecture and a
// writable KVM device.
func KVMAvailableFor(arch sys.Arch) bool {
	return kvmAvailable(arch, runtime.GOARCH, kvmDevice)
}

func kvmAvailable(arch sys.Arch, hostArch, device string) bool {
	goArch := arch.GOARCH()
	if goArch == "" || goArch != hostArch {
		return false
	}

	f, err := os.OpenFile(device, os.O_WRONLY, 0)
	if err != nil {
		return false
	}

	_ = f.Close()

	return true
}
