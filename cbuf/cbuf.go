// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf runs config scripts: text split into commands at new lines
// and at semicolons outside of quotes.
package cbuf

import (
	"github.com/pkg/errors"
)

type CommandBuffer struct {
	text      string
	executors executors
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

// AddText appends text to the end of the buffer.
func (c *CommandBuffer) AddText(text string) {
	c.text += text
}

// InsertText puts text in front of the remaining buffer, so that an exec'd
// script runs before the lines following the exec.
func (c *CommandBuffer) InsertText(text string) {
	c.text = text + "\n" + c.text
}

// Execute runs commands until the buffer is empty. It stops at the first
// command that fails.
func (c *CommandBuffer) Execute() error {
	for len(c.text) != 0 {
		i := 0
		quote := false
	LineLoop:
		for i = 0; i < len(c.text); i++ {
			switch c.text[i] {
			case '"':
				quote = !quote
			case ';':
				if !quote {
					break LineLoop
				}
			case '\n':
				break LineLoop
			}
		}
		// do not put ';' or '\n' in line
		line := c.text[:i]
		// but remove this char as well
		if i < len(c.text) {
			i++
		}
		c.text = c.text[i:]
		if err := c.executors.execute(c, line); err != nil {
			return errors.Wrapf(err, "executing %q", line)
		}
	}
	return nil
}
