// Copyright (c) The htif authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package htif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConsole(t *testing.T) (c *Console, to *fakeReg, from *fakeReg, trace *[]string) {
	htif, to, from, trace := testController(t)
	htif.Delay = 0

	return &Console{HTIF: htif}, to, from, trace
}

func TestConsoleWrite(t *testing.T) {
	c, _, _, trace := testConsole(t)

	n, err := c.Write([]byte("hi\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, []string{
		"tohost store 0x0101000000000068",
		"tohost store 0x0101000000000069",
		"tohost store 0x010100000000000a",
	}, *trace)
}

func TestConsoleRead(t *testing.T) {
	c, _, from, trace := testConsole(t)
	from.val = 0xffffffffffffff41

	buf := make([]byte, 8)

	n, err := c.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(0x41), buf[0])

	assert.Equal(t, []string{
		"tohost store 0x0100000000000000",
		"fromhost load",
	}, *trace)
}

func TestConsoleReadEmpty(t *testing.T) {
	c, _, _, trace := testConsole(t)

	n, err := c.Read(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, *trace)
}

func TestLogBufferFlushOnNewline(t *testing.T) {
	c, _, _, trace := testConsole(t)
	l := &LogBuffer{Console: c}

	l.Log('h')
	l.Log('i')
	assert.Empty(t, *trace)

	l.Log('\n')
	assert.Len(t, stores(trace, "tohost"), 3)
	assert.Equal(t, "tohost store 0x0101000000000068", (*trace)[0])
}

func TestLogBufferFlushOnOverflow(t *testing.T) {
	c, _, _, trace := testConsole(t)
	l := &LogBuffer{Console: c}

	for i := 0; i < outputLimit; i++ {
		l.Log('x')
	}
	assert.Empty(t, *trace)

	l.Log('x')
	assert.Len(t, stores(trace, "tohost"), outputLimit+1)
}

func TestTerminal(t *testing.T) {
	c, _, from, _ := testConsole(t)
	from.val = '\r'

	term := c.Terminal("> ")
	require.NotNil(t, term)

	line, err := term.ReadLine()
	require.NoError(t, err)
	assert.Empty(t, line)
}
