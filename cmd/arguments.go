// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strconv"
	"strings"
	"unicode"
)

type Arg struct {
	a string
}

func (a Arg) String() string {
	return a.a
}

func (a Arg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

func (a Arg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a Arg) Bool() bool {
	switch a.a {
	case "1", "t", "T", "true", "TRUE", "True", "On", "ON", "on":
		return true
	default:
		return false
	}
}

type Arguments struct {
	// each arg on its own
	args []Arg
	// the trimmed input line
	full string
}

func (c *Arguments) Argv(i int) Arg {
	if i < 0 || i >= len(c.args) {
		return Arg{}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []Arg {
	return c.args
}

// ArgumentString returns everything after the command name with
// surrounding quotes removed.
func (c *Arguments) ArgumentString() string {
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits one command line into words. Double quotes group words,
// "//" starts a comment that runs to the end of the line.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimFunc(s, unicode.IsSpace)
	args.args = []Arg{}

	in := args.full
	for len(in) > 0 {
		switch {
		case isSpace(in[0]):
			in = in[1:]
		case in[0] == '"':
			end := strings.IndexByte(in[1:], '"')
			if end < 0 {
				// unterminated, take the rest
				args.args = append(args.args, Arg{in[1:]})
				return
			}
			args.args = append(args.args, Arg{in[1 : end+1]})
			in = in[end+2:]
		case strings.HasPrefix(in, "//"), in[0] == '\n' || in[0] == '\r':
			return
		default:
			end := strings.IndexFunc(in, func(r rune) bool { return r <= ' ' })
			if end < 0 {
				end = len(in)
			}
			args.args = append(args.args, Arg{in[:end]})
			in = in[end:]
		}
	}
	return
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
