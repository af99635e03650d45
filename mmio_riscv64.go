// Copyright (c) The htif authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64

package htif

import (
	"sync/atomic"
	"unsafe"
)

// Conventional HTIF register placement on the RV64 memory map. Spike resolves
// the actual locations from the tohost/fromhost ELF symbols, these defaults
// match the riscv-tests/riscv-pk layout and must be kept in sync with the
// linker script of the embedding firmware.
const (
	ToHostAddr   = 0x80001000
	FromHostAddr = 0x80001008
)

// MMIO is a Word at a fixed physical address, naturally aligned for 64-bit
// access.
//
// Accesses go through sync/atomic, which the compiler cannot elide or
// reorder.
type MMIO struct {
	Addr uintptr
}

// Load performs a single 64-bit load from the register address.
func (r *MMIO) Load() uint64 {
	return atomic.LoadUint64((*uint64)(unsafe.Pointer(r.Addr)))
}

// Store performs a single 64-bit store to the register address.
func (r *MMIO) Store(val uint64) {
	atomic.StoreUint64((*uint64)(unsafe.Pointer(r.Addr)), val)
}

// Open returns a Controller driving the HTIF register pair at the passed
// physical addresses (see ToHostAddr, FromHostAddr).
func Open(tohost uintptr, fromhost uintptr) (*Controller, error) {
	return New(
		&MMIO{Addr: tohost},
		&MMIO{Addr: fromhost},
	)
}
