// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"log"

	"objexport/cmd"
	"objexport/conlog"
)

// Efunc handles a command line. It reports whether it knew the command.
type Efunc func(*CommandBuffer, cmd.Arguments) (bool, error)

type executors []Efunc

func (ex *executors) execute(c *CommandBuffer, s string) error {
	a := cmd.Parse(s)
	args := a.Args()
	if len(args) == 0 {
		return nil // no tokens
	}
	for _, e := range *ex {
		if ok, err := e(c, a); err != nil {
			return err
		} else if ok {
			return nil
		}
	}

	name := args[0].String()
	log.Printf("Unknown command \"%s\"", name)
	conlog.Printf("Unknown command \"%s\"\n", name)
	return nil
}
