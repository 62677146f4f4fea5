// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"testing"

	"github.com/aibor/qemuick/internal/sys"
	"github.com/stretchr/testify/assert"
)

func TestLaunchRequestArguments(t *testing.T) {
	tests := []struct {
		name   string
		req    LaunchRequest
		expect any
		assert assert.ComparisonAssertionFunc
	}{
		{
			name: "memory",
			req: LaunchRequest{
				MemoryMB: 269,
			},
			expect: "269",
			assert: ArgumentValueAssertionFunc("m", assert.Equal),
		},
		{
			name: "cdrom",
			req: LaunchRequest{
				ISOPath: "/isos/install,amd64.iso",
			},
			expect: "/isos/install,amd64.iso",
			assert: ArgumentValueAssertionFunc("cdrom", assert.Equal),
		},
		{
			name:   "boot from cdrom",
			req:    LaunchRequest{},
			expect: "d",
			assert: ArgumentValueAssertionFunc("boot", assert.Equal),
		},
		{
			name: "order",
			req: LaunchRequest{
				Arch:     sys.X86_64,
				ISOPath:  "/tmp/test.iso",
				MemoryMB: 2048,
			},
			expect: []Argument{
				UniqueArg("m", "2048"),
				UniqueArg("cdrom", "/tmp/test.iso"),
				UniqueArg("boot", "d"),
			},
			assert: assert.Equal,
		},
		{
			name: "extra args are not essential",
			req: LaunchRequest{
				ExtraArgs: []string{"-nographic"},
			},
			expect: UniqueArg("nographic"),
			assert: assert.NotContains,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, tt.req.arguments(), tt.expect)
		})
	}
}
