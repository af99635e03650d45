// Copyright (c) The htif authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package htif

import (
	"bytes"
)

const outputLimit = 1024
const flushChr = 0x0a // \n

// Console adapts the HTIF character device to an io.ReadWriter, one mailbox
// transaction per byte. It inherits the single owner contract of the
// underlying Controller.
type Console struct {
	HTIF *Controller
}

// Read blocks until the host console provides a single character, it never
// returns more than one byte per call as the device is unbuffered.
func (c *Console) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return
	}

	b, err := c.HTIF.ReadByte()

	if err != nil {
		return
	}

	p[0] = b

	return 1, nil
}

// Write sends each byte of p to the host console in order.
func (c *Console) Write(p []byte) (n int, err error) {
	for _, b := range p {
		if err = c.HTIF.SendByte(b); err != nil {
			return
		}

		n++
	}

	return
}

// LogBuffer accumulates log output and forwards it to the host console on
// newline, or once the buffered line exceeds outputLimit. Batching lines
// amortizes the per request pacing cost, its Log method is a suitable
// `runtime.printk` sink for TamaGo unikernels.
type LogBuffer struct {
	// Console is the flush destination.
	Console *Console

	buf bytes.Buffer
}

// Log buffers a single character of log output, flushing buffered output to
// the host console when c terminates a line.
func (l *LogBuffer) Log(c byte) {
	l.buf.WriteByte(c)

	if c == flushChr || l.buf.Len() > outputLimit {
		l.Console.Write(l.buf.Bytes())
		l.buf.Reset()
	}
}
