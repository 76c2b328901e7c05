// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"golang.org/x/tools/godoc/vfs"

	"objexport/pack"
)

// packFileSystem exposes a pack archive to the namespace. Entries have no
// root, all names are relative.
type packFileSystem struct {
	p *pack.Pack
}

type closer struct {
	*io.SectionReader
}

func (*closer) Close() error {
	return nil
}

type fileInfo struct {
	name string
	size int64
	dir  bool
}

func (f *fileInfo) Name() string {
	return f.name
}
func (f *fileInfo) Size() int64 {
	return f.size
}
func (f *fileInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0555
	}
	return 0444
}
func (f *fileInfo) ModTime() time.Time {
	return time.Time{}
}
func (f *fileInfo) IsDir() bool {
	return f.dir
}
func (f *fileInfo) Sys() any {
	return nil
}

func (p packFileSystem) Open(name string) (vfs.ReadSeekCloser, error) {
	f, err := p.p.Open(strings.TrimPrefix(name, "/"))
	if err != nil {
		return nil, err
	}
	return &closer{f}, nil
}

func (p packFileSystem) Stat(name string) (os.FileInfo, error) {
	name = strings.TrimPrefix(name, "/")
	if f, err := p.p.Open(name); err == nil {
		return &fileInfo{name: path.Base(name), size: f.Size()}, nil
	}
	prefix := name + "/"
	if name == "" {
		prefix = ""
	}
	for _, n := range p.p.Names() {
		if strings.HasPrefix(n, prefix) {
			return &fileInfo{name: path.Base("/" + name), dir: true}, nil
		}
	}
	return nil, os.ErrNotExist
}

func (p packFileSystem) Lstat(name string) (os.FileInfo, error) {
	return p.Stat(name)
}

// ReadDir lists the entries directly below dir. Directories only exist as
// prefixes of entry names.
func (p packFileSystem) ReadDir(dir string) ([]os.FileInfo, error) {
	dir = strings.Trim(dir, "/")
	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}
	var infos []os.FileInfo
	seen := make(map[string]bool)
	for _, n := range p.p.Names() {
		rest, ok := strings.CutPrefix(n, prefix)
		if !ok {
			continue
		}
		child, _, sub := strings.Cut(rest, "/")
		if seen[child] {
			continue
		}
		seen[child] = true
		if sub {
			infos = append(infos, &fileInfo{name: child, dir: true})
			continue
		}
		f, _ := p.p.Open(n)
		infos = append(infos, &fileInfo{name: child, size: f.Size()})
	}
	if len(infos) == 0 && dir != "" {
		return nil, os.ErrNotExist
	}
	return infos, nil
}

func (packFileSystem) RootType(string) vfs.RootType {
	return ""
}

func (p packFileSystem) String() string {
	return "pack(" + p.p.String() + ")"
}
