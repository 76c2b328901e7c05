// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"objexport/cmd"
	"objexport/conlog"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	NONE    flag = 0
	ARCHIVE flag = 1
	ROM     flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
}

func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) Int() int {
	return int(cv.value)
}

func (cv *Cvar) Toggle() {
	if cv.Bool() {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0" && cv.stringValue != ""
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[strings.ToLower(name)]
	return cv, ok
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value}
	cv.SetByString(value)
	cvarArray = append(cvarArray, cv)
	cvarByName[strings.ToLower(name)] = cv
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := Get(name); ok {
		return nil, fmt.Errorf("can't register variable %s, already defined", name)
	}

	cv := create(name, value)

	if flags&ARCHIVE != 0 {
		cv.archive = true
	}
	if flags&ROM != 0 {
		cv.rom = true
	}
	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		log.Panic(n)
	}
	return cv
}

// Set changes a registered cvar. Used by command line overrides.
func Set(name, value string) error {
	cv, ok := Get(name)
	if !ok {
		return fmt.Errorf("variable %s not found", name)
	}
	cv.SetByString(value)
	return nil
}

// Execute handles a line that starts with a cvar name: alone it prints the
// value, followed by a value it sets it.
func Execute(a cmd.Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	cv.SetByString(args[1].String())
	return true, nil
}

func init() {
	cmd.Must(cmd.AddCommand("cvarlist", list))
	cmd.Must(cmd.AddCommand("reset", reset))
	cmd.Must(cmd.AddCommand("set", set))
	cmd.Must(cmd.AddCommand("toggle", toggle))
}

func set(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch {
	case len(args) >= 2:
		if cmd.Exists(args[0].String()) {
			conlog.Printf("conflict with command\n")
			return nil
		}
		if cv, ok := Get(args[0].String()); ok {
			cv.SetByString(args[1].String())
		} else {
			cv := create(args[0].String(), args[1].String())
			cv.user = true
		}
	default:
		conlog.Printf("set <cvar> <value>\n")
	}
	return nil
}

func toggle(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Toggle()
		} else {
			conlog.Printf("toggle: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("toggle <cvar> : toggle cvar\n")
	}
	return nil
}

func reset(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Reset()
		} else {
			conlog.Printf("reset: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("reset <cvar> : reset cvar to default\n")
	}
	return nil
}

func list(a cmd.Arguments) error {
	args := a.Args()
	prefix := ""
	if len(args) > 1 {
		prefix = args[1].String()
	}
	count := 0
	for _, v := range All() {
		if !strings.HasPrefix(v.Name(), prefix) {
			continue
		}
		archive := " "
		if v.Archive() {
			archive = "*"
		}
		conlog.SafePrintf("%s %s \"%s\"\n", archive, v.Name(), v.String())
		count++
	}
	if prefix != "" {
		conlog.SafePrintf("%v cvars beginning with \"%v\"\n", count, prefix)
	} else {
		conlog.SafePrintf("%v cvars\n", count)
	}
	return nil
}
