// Copyright (c) The htif authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package htif implements a driver for the blocking console character device
// exposed through the Host Target Interface (HTIF) of RISC-V instruction set
// simulators such as Spike (riscv-isa-sim).
//
// The interface consists of two 64-bit memory mapped registers, tohost and
// fromhost, whose stores and loads are trapped by the simulator and serviced
// as host API calls (see https://github.com/riscv/riscv-isa-sim/issues/364).
//
// The mailbox holds a single outstanding request, the driver performs no
// locking and assumes a sole owner. Concurrent callers must serialize
// externally, an interleaved request between another caller's request and
// response corrupts both transactions.
package htif

import (
	"github.com/usbarmory/tamago/bits"
)

// HTIF request word layout, written to the tohost register.
const (
	// DeviceShift is the position of the device number (bits 63-56)
	DeviceShift = 56
	// DeviceCharIO is the blocking character I/O device
	DeviceCharIO = 1

	// CommandShift is the position of the command number (bits 55-48)
	CommandShift = 48
	// CommandReadChar reads a character from the host console
	CommandReadChar = 0
	// CommandWriteChar writes a character to the host console
	CommandWriteChar = 1

	// the payload occupies bits 47-0
	payloadMask = (1 << CommandShift) - 1
)

// mailbox register size
const regSize = 8

// DefaultDelay is the initial pacing read count of newly created controllers
// (see Controller.Delay).
const DefaultDelay = 100

// Controller represents the sole owner of an HTIF register pair.
type Controller struct {
	// ToHost is the request register, stored with request words and read
	// back, results discarded, to pace consecutive requests.
	ToHost Word
	// FromHost is the response register.
	FromHost Word

	// Delay is the number of discarded ToHost loads issued after each
	// request store. Spike drops characters when stores land too close
	// together, the loads only slow the access sequence down and carry
	// no synchronization guarantee. The default suits Spike at stock
	// speed, embedders may tune it for faster or slower simulators.
	Delay int
}

// New returns a Controller owning the passed register pair. The registers
// alias simulator behavior, the caller must ensure no other owner exists for
// the same pair.
//
// The HTIF host interface cannot currently fail, the returned error is
// always nil and is carried for future host interface revisions (e.g.
// unsupported device or command, timeout).
func New(to Word, from Word) (htif *Controller, err error) {
	htif = &Controller{
		ToHost:   to,
		FromHost: from,
		Delay:    DefaultDelay,
	}

	return
}

// Size returns the size of the controller MMIO register file in bytes.
func (htif *Controller) Size() int {
	return 2 * regSize
}

// request builds an HTIF request word out of its device, command and payload
// fields.
func request(device uint64, command uint64, payload uint64) (req uint64) {
	bits.SetN64(&req, DeviceShift, 0xff, device)
	bits.SetN64(&req, CommandShift, 0xff, command)
	bits.SetN64(&req, 0, payloadMask, payload)

	return
}

// writeRequest issues a single request store to the tohost register, paced
// with Delay discarded loads.
func (htif *Controller) writeRequest(req uint64) {
	htif.ToHost.Store(req)

	for i := 0; i < htif.Delay; i++ {
		htif.ToHost.Load()
	}
}

// readResponse returns the fromhost register contents verbatim.
func (htif *Controller) readResponse() uint64 {
	return htif.FromHost.Load()
}

// SendByte writes a single character to the host console.
//
// A nil error is always returned (see New).
func (htif *Controller) SendByte(c byte) (err error) {
	htif.writeRequest(request(DeviceCharIO, CommandWriteChar, uint64(c)))

	return
}

// ReadByte obtains a single character from the host console, blocking until
// one is available. Only the low byte of the response is meaningful, the
// remaining bits are discarded.
//
// A nil error is always returned (see New).
func (htif *Controller) ReadByte() (c byte, err error) {
	htif.writeRequest(request(DeviceCharIO, CommandReadChar, 0))
	res := htif.readResponse()

	return byte(bits.Get64(&res, 0, 0xff)), nil
}
