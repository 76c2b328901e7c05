// SPDX-License-Identifier: GPL-2.0-or-later

// Package pack reads and writes PACK archives: a flat directory of named
// files stored back to back, used to ship scenes together with their
// config scripts.
package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
)

const (
	entrySize = 64
	nameSize  = 56
)

var magic = [4]byte{'P', 'A', 'C', 'K'}

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

type entry struct {
	Name   [nameSize]byte
	Offset int32
	Size   int32
}

type Pack struct {
	f     *os.File
	files map[string]*qfile
	name  string
}

type qfile struct {
	offset int64
	size   int64
}

// Open returns a reader for the named entry or os.ErrNotExist.
func (p *Pack) Open(name string) (*io.SectionReader, error) {
	q, ok := p.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NewSectionReader(p.f, q.offset, q.size), nil
}

// Names lists the entries in sorted order.
func (p *Pack) Names() []string {
	names := make([]string, 0, len(p.files))
	for n := range p.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Close() error {
	return p.f.Close()
}

func (p *Pack) init() error {
	var h header
	if err := binary.Read(p.f, binary.LittleEndian, &h); err != nil {
		return errors.Wrap(err, "reading header")
	}
	if h.ID != magic {
		return errors.New("not a pack")
	}
	if h.Offset < 0 || h.Size < 0 || h.Size%entrySize != 0 {
		return errors.Errorf("bad directory at %d size %d", h.Offset, h.Size)
	}
	if _, err := p.f.Seek(int64(h.Offset), io.SeekStart); err != nil {
		return err
	}
	n := h.Size / entrySize
	p.files = make(map[string]*qfile, n)
	for i := int32(0); i < n; i++ {
		var e entry
		if err := binary.Read(p.f, binary.LittleEndian, &e); err != nil {
			return errors.Wrapf(err, "reading entry %d", i)
		}
		end := bytes.IndexByte(e.Name[:], 0)
		if end < 0 {
			end = nameSize
		}
		name := string(e.Name[:end])
		if p.files[name] != nil {
			return errors.Errorf("entry %s is not unique", name)
		}
		p.files[name] = &qfile{
			offset: int64(e.Offset),
			size:   int64(e.Size),
		}
	}
	return nil
}

func NewPackReader(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	p := &Pack{f: f, name: name}
	if err := p.init(); err != nil {
		f.Close()
		return nil, errors.Wrap(err, name)
	}
	return p, nil
}

// File is one entry handed to Write.
type File struct {
	Name string
	Data []byte
}

// Write stores files as a pack: header, contents, then the directory.
func Write(w io.Writer, files []File) error {
	offset := int32(binary.Size(header{}))
	entries := make([]entry, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if len(f.Name) == 0 || len(f.Name) >= nameSize {
			return errors.Errorf("bad entry name %q", f.Name)
		}
		if seen[f.Name] {
			return errors.Errorf("entry %s is not unique", f.Name)
		}
		seen[f.Name] = true
		var e entry
		copy(e.Name[:], f.Name)
		e.Offset = offset
		e.Size = int32(len(f.Data))
		entries = append(entries, e)
		offset += e.Size
	}
	h := header{
		ID:     magic,
		Offset: offset,
		Size:   int32(len(entries) * entrySize),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	for _, f := range files {
		if _, err := w.Write(f.Data); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, entries)
}
