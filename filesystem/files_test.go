// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"objexport/pack"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestSearchOrder(t *testing.T) {
	base := t.TempDir()
	extra := t.TempDir()
	writeFile(t, base, "doc1.txt", "base doc1")
	writeFile(t, base, "doc2.txt", "base doc2")
	writeFile(t, extra, "doc1.txt", "extra doc1")

	UseBaseDir(base)
	defer UseBaseDir(".")
	if err := AddSearchDir(extra); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		name, want string
	}{
		{"doc1.txt", "extra doc1"},
		{"doc2.txt", "base doc2"},
		{"/doc2.txt", "base doc2"},
	} {
		b, err := ReadFile(tc.name)
		if err != nil {
			t.Fatalf("ReadFile(%q) = %v", tc.name, err)
		}
		if string(b) != tc.want {
			t.Errorf("ReadFile(%q) = %q, want %q", tc.name, b, tc.want)
		}
	}
	if _, err := ReadFile("doc3.txt"); err == nil {
		t.Errorf("ReadFile(doc3.txt) found a missing file")
	}
	dirs := SearchDirs()
	if len(dirs) != 2 || dirs[0] != extra || dirs[1] != base {
		t.Errorf("SearchDirs() = %v", dirs)
	}
	if BaseDir() != base {
		t.Errorf("BaseDir() = %q, want %q", BaseDir(), base)
	}
}

func TestOpenAbsolute(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "abs.txt", "absolute")
	UseBaseDir(t.TempDir())
	defer UseBaseDir(".")

	f, err := Open(filepath.Join(dir, "abs.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "absolute" {
		t.Errorf("contents = %q", b)
	}
}

func TestExt(t *testing.T) {
	for _, tc := range []struct {
		in, ext, stripped string
	}{
		{"out/scene.obj", ".obj", "out/scene"},
		{"scene", "", "scene"},
		{"dir.v2/scene", "", "dir.v2/scene"},
		{`c:\dir\scene.tar.obj`, ".obj", `c:\dir\scene.tar`},
	} {
		if got := Ext(tc.in); got != tc.ext {
			t.Errorf("Ext(%q) = %q, want %q", tc.in, got, tc.ext)
		}
		if got := StripExt(tc.in); got != tc.stripped {
			t.Errorf("StripExt(%q) = %q, want %q", tc.in, got, tc.stripped)
		}
	}
}

func TestPackSearchDir(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "export.cfg", "base cfg")
	writeFile(t, base, "wall.yaml", "base wall")

	var b bytes.Buffer
	err := pack.Write(&b, []pack.File{
		{Name: "export.cfg", Data: []byte("packed cfg")},
		{Name: "scenes/roof.yaml", Data: []byte("packed roof")},
	})
	if err != nil {
		t.Fatal(err)
	}
	pak := filepath.Join(t.TempDir(), "scenes.pak")
	if err := os.WriteFile(pak, b.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	UseBaseDir(base)
	defer UseBaseDir(".")
	if err := AddSearchDir(pak); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		name, want string
	}{
		{"export.cfg", "packed cfg"},
		{"wall.yaml", "base wall"},
		{"scenes/roof.yaml", "packed roof"},
	} {
		got, err := ReadFile(tc.name)
		if err != nil {
			t.Fatalf("ReadFile(%q) = %v", tc.name, err)
		}
		if string(got) != tc.want {
			t.Errorf("ReadFile(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
	if err := AddSearchDir(filepath.Join(base, "missing.pak")); err == nil {
		t.Errorf("AddSearchDir of a missing pack succeeded")
	}
}

func TestPackReadDir(t *testing.T) {
	var b bytes.Buffer
	err := pack.Write(&b, []pack.File{
		{Name: "a.cfg", Data: []byte("1")},
		{Name: "scenes/roof.yaml", Data: []byte("22")},
		{Name: "scenes/wall.yaml", Data: []byte("333")},
	})
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "x.pak")
	if err := os.WriteFile(name, b.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := pack.NewPackReader(name)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	fsys := packFileSystem{p}

	infos, err := fsys.ReadDir("/")
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 || infos[0].Name() != "a.cfg" || !infos[1].IsDir() {
		t.Errorf("ReadDir(/) = %v", infos)
	}
	infos, err = fsys.ReadDir("/scenes")
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 || infos[1].Name() != "wall.yaml" || infos[1].Size() != 3 {
		t.Errorf("ReadDir(/scenes) = %v", infos)
	}
	if fi, err := fsys.Stat("/scenes"); err != nil || !fi.IsDir() {
		t.Errorf("Stat(/scenes) = %v, %v", fi, err)
	}
	if _, err := fsys.Stat("/none"); !os.IsNotExist(err) {
		t.Errorf("Stat(/none) = %v, want not exist", err)
	}
}
