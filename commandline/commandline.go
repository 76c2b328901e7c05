// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strings"

	"objexport/filesystem"
)

var (
	conDebug bool

	basedir  string
	execFile string
	mtlFile  string
	objFile  string

	searchPaths stringList
	overrides   cvarSets
)

type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// CvarSet is one -set name=value override.
type CvarSet struct {
	Name  string
	Value string
}

type cvarSets []CvarSet

func (c *cvarSets) String() string {
	parts := make([]string, 0, len(*c))
	for _, s := range *c {
		parts = append(parts, s.Name+"="+s.Value)
	}
	return strings.Join(parts, ",")
}

func (c *cvarSets) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	*c = append(*c, CvarSet{Name: name, Value: value})
	return nil
}

func init() {
	flag.BoolVar(&conDebug, "condebug", false, "enable developer output")

	flag.StringVar(&basedir, "basedir", ".", "directory scene and config files are searched in")
	flag.StringVar(&execFile, "exec", "", "config script to run before exporting")
	flag.StringVar(&mtlFile, "mtl", "", "material library output, defaults to the obj path with .mtl")
	flag.StringVar(&objFile, "o", "out.obj", "geometry output")

	flag.Var(&searchPaths, "path", "additional search directory, searched before -basedir (repeatable)")
	flag.Var(&overrides, "set", "cvar override as name=value, applied after -exec (repeatable)")
}

func BaseDirectory() string {
	return basedir
}

func SearchPaths() []string {
	return searchPaths
}

func ExecFile() string {
	return execFile
}

func ObjFile() string {
	return objFile
}

func MtlFile() string {
	if mtlFile != "" {
		return mtlFile
	}
	return filesystem.StripExt(objFile) + ".mtl"
}

func CvarOverrides() []CvarSet {
	return overrides
}

func ConsoleDebug() bool {
	return conDebug
}

