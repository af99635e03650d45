// Copyright (c) The htif authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package htif

import (
	"golang.org/x/term"
)

// Terminal returns an interactive terminal reading from, and writing to, the
// host console.
func (c *Console) Terminal(prompt string) *term.Terminal {
	return term.NewTerminal(c, prompt)
}
