// Copyright (c) The htif authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package htif

// Word is a single 64-bit mailbox register.
//
// Implementations must perform accesses which the compiler can neither elide
// nor reorder: the registers alias host behavior invisible to the Go memory
// model, a cached load or dropped store breaks the protocol. On hardware this
// means sync/atomic accesses (see MMIO), test harnesses may substitute
// recorded plain words.
type Word interface {
	Load() uint64
	Store(val uint64)
}
