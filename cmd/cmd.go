// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"fmt"
	"sort"
	"strings"
)

type Func func(args Arguments) error

type Commands map[string]Func

func New() *Commands {
	c := make(Commands)
	return &c
}

func (c *Commands) Add(name string, f Func) error {
	ln := strings.ToLower(name)
	if _, ok := (*c)[ln]; ok {
		return fmt.Errorf("command %s already defined", ln)
	}
	(*c)[ln] = f
	return nil
}

func (c *Commands) Exists(cmdName string) bool {
	name := strings.ToLower(cmdName)
	_, ok := (*c)[name]
	return ok
}

func (c *Commands) List() []string {
	cmds := make([]string, 0, len(*c))
	for cmd := range *c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Execute runs the command named by the first argument. It reports false if
// no such command exists.
func (c *Commands) Execute(a Arguments) (bool, error) {
	n := a.Args()
	if len(n) == 0 {
		return false, nil
	}
	name := strings.ToLower(n[0].String())
	if cmd, ok := (*c)[name]; ok {
		if err := cmd(a); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

var (
	commands = make(Commands)
)

func Must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func AddCommand(name string, f Func) error {
	return commands.Add(name, f)
}

func Exists(cmdName string) bool {
	return commands.Exists(cmdName)
}

func Execute(a Arguments) (bool, error) {
	return commands.Execute(a)
}

func List() []string {
	return commands.List()
}
