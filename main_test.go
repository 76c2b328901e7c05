// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"objexport/cvar"
	"objexport/cvars"
	"objexport/export"
	"objexport/filesystem"
	"objexport/math/vec"
	"objexport/mesh"
	"objexport/wavefront"
)

func TestExecScript(t *testing.T) {
	dir := t.TempDir()
	script := "set obj_use_element_names 1; obj_use_material_names \"1\"\n// comment\nexport_workers 2\n"
	if err := os.WriteFile(filepath.Join(dir, "export.cfg"), []byte(script), 0644); err != nil {
		t.Fatal(err)
	}
	filesystem.UseBaseDir(dir)
	defer filesystem.UseBaseDir(".")
	defer func() {
		for _, n := range []string{"obj_use_element_names", "obj_use_material_names", "export_workers"} {
			if cv, ok := cvar.Get(n); ok {
				cv.Reset()
			}
		}
	}()

	cb := newCommandBuffer()
	cb.AddText("exec export.cfg\n")
	if err := cb.Execute(); err != nil {
		t.Fatal(err)
	}
	s := cvars.ObjSettings()
	if !s.UseElementNames || !s.UseMaterialNames || s.UseElementGUIDs {
		t.Errorf("ObjSettings() = %+v", s)
	}
	if o := cvars.ExportOptions(); o.Workers != 2 {
		t.Errorf("Workers = %d, want 2", o.Workers)
	}

	cb.AddText("exec missing.cfg\n")
	if err := cb.Execute(); err == nil {
		t.Errorf("exec of a missing script succeeded")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "scene.obj")
	mtlPath := filepath.Join(dir, "scene.mtl")
	e := &mesh.Element{UniqueID: "product-1", Name: "Wall"}
	e.Mesh.Vertices = []vec.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	e.Mesh.Faces = [][3]int{{0, 1, 2}}
	e.Mesh.Materials = []mesh.Material{{Name: "red", OriginalName: "red"}}
	e.Mesh.MaterialIDs = []int{0}

	err := writeFiles(context.Background(), objPath, mtlPath, []*mesh.Element{e},
		wavefront.Settings{UseElementNames: true}, export.Options{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	obj, err := os.ReadFile(objPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"mtllib scene.mtl\n", "g Wall\n", "usemtl red\n", "f 1//1 2//2 3//3\n"} {
		if !strings.Contains(string(obj), want) {
			t.Errorf("obj lacks %q:\n%s", want, obj)
		}
	}
	mtl, err := os.ReadFile(mtlPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(mtl), "newmtl red\n") {
		t.Errorf("mtl = %q", mtl)
	}
}

func TestRunWithoutScenes(t *testing.T) {
	if err := run(context.Background(), nil); err == nil {
		t.Errorf("run without scenes succeeded")
	}
}
