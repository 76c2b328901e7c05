// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem resolves scene and config files against a search path
// of directories and pack archives. Entries added later are searched first.
package filesystem

import (
	"os"
	"path"
	"path/filepath"
	"sync"

	"golang.org/x/tools/godoc/vfs"

	"objexport/pack"
)

var (
	baseDir    string
	searchDirs []string
	ns         vfs.NameSpace
	packs      []*pack.Pack
	mutex      sync.RWMutex
)

func init() {
	UseBaseDir(".")
}

// BaseDir returns the directory searched last.
func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// SearchDirs returns the search path, most important first.
func SearchDirs() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	dirs := make([]string, 0, len(searchDirs)+1)
	for i := len(searchDirs) - 1; i >= 0; i-- {
		dirs = append(dirs, searchDirs[i])
	}
	return append(dirs, baseDir)
}

// UseBaseDir resets the search path to dir.
func UseBaseDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	baseDir = dir
	searchDirs = nil
	for _, p := range packs {
		p.Close()
	}
	packs = nil
	ns = vfs.NameSpace{}
	ns.Bind("/", vfs.OS(dir), "/", vfs.BindReplace)
}

// AddSearchDir puts dir in front of the search path. A name ending in .pak
// is mounted as a pack archive.
func AddSearchDir(dir string) error {
	mutex.Lock()
	defer mutex.Unlock()
	if Ext(dir) == ".pak" {
		p, err := pack.NewPackReader(dir)
		if err != nil {
			return err
		}
		packs = append(packs, p)
		ns.Bind("/", packFileSystem{p}, "/", vfs.BindBefore)
	} else {
		ns.Bind("/", vfs.OS(dir), "/", vfs.BindBefore)
	}
	searchDirs = append(searchDirs, dir)
	return nil
}

// Open opens name from the search path. Absolute names bypass it.
func Open(name string) (vfs.ReadSeekCloser, error) {
	if filepath.IsAbs(name) {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	mutex.RLock()
	defer mutex.RUnlock()
	return ns.Open(path.Join("/", filepath.ToSlash(name)))
}

func ReadFile(name string) ([]byte, error) {
	if filepath.IsAbs(name) {
		return os.ReadFile(name)
	}
	mutex.RLock()
	defer mutex.RUnlock()
	return vfs.ReadFile(ns, path.Join("/", filepath.ToSlash(name)))
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
