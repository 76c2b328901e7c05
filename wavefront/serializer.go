// SPDX-License-Identifier: GPL-2.0-or-later

// Package wavefront writes meshes as Wavefront .obj geometry together with a
// .mtl material library.
package wavefront

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"objexport/mesh"
)

const Generator = "objexport"

// Version is printed in the file headers.
var Version = "0.3.1"

var ErrSinkUnavailable = errors.New("output sink unavailable")

// Serializer appends elements to one geometry file. Vertex indices continue
// across elements and every material is defined once per run.
// A Serializer is not safe for concurrent use.
type Serializer struct {
	obj         *sink
	mtl         *sink
	mtlFilename string
	settings    Settings

	// vertices written by earlier elements
	vertexTotal int
	// sanitized names already in the material library
	materials map[string]struct{}
	err       error
}

// NewSerializer writes geometry to obj and materials to mtl. mtlFilename is
// the path the material library is stored at; only its base name is written.
func NewSerializer(obj, mtl io.Writer, mtlFilename string, s Settings) *Serializer {
	return &Serializer{
		obj:         newSink("geometry", obj),
		mtl:         newSink("materials", mtl),
		mtlFilename: mtlFilename,
		settings:    s,
		materials:   make(map[string]struct{}),
	}
}

// Ready reports whether both sinks accept writes. After a failed write it
// keeps returning that failure.
func (s *Serializer) Ready() error {
	if s.obj == nil || s.mtl == nil {
		return ErrSinkUnavailable
	}
	return s.err
}

// VertexTotal returns the number of vertices written so far.
func (s *Serializer) VertexTotal() int {
	return s.vertexTotal
}

// MaterialCount returns the number of materials in the library so far.
func (s *Serializer) MaterialCount() int {
	return len(s.materials)
}

func (s *Serializer) flush() error {
	if err := s.obj.flush(); err != nil {
		s.err = err
		return err
	}
	if err := s.mtl.flush(); err != nil {
		s.err = err
		return err
	}
	return nil
}

func (s *Serializer) WriteHeader() error {
	if err := s.Ready(); err != nil {
		return err
	}
	s.obj.printf("# File generated by %s %s\n", Generator, Version)
	s.obj.printf("mtllib %s\n", basename(s.mtlFilename))
	s.mtl.printf("# File generated by %s %s\n", Generator, Version)
	return s.flush()
}

// WriteMaterial appends a definition of m to the material library. It does
// not consult the registry; a second call writes a second block.
func (s *Serializer) WriteMaterial(m *mesh.Material) error {
	if err := s.Ready(); err != nil {
		return err
	}
	s.writeMaterial(m)
	return s.flush()
}

func (s *Serializer) writeMaterial(m *mesh.Material) {
	s.mtl.printf("newmtl %s\n", MaterialName(s.settings, m))
	if m.HasDiffuse() {
		d := m.Diffuse
		s.mtl.printf("Kd %s %s %s\n", ftoa(d.X), ftoa(d.Y), ftoa(d.Z))
	}
	if m.HasSpecular() {
		sp := m.Specular
		s.mtl.printf("Ks %s %s %s\n", ftoa(sp.X), ftoa(sp.Y), ftoa(sp.Z))
	}
	if m.HasSpecularity() {
		s.mtl.printf("Ns %s\n", ftoa(*m.Specularity))
	}
	if m.HasTransparency() {
		opacity := 1 - *m.Transparency
		if opacity < 1 {
			// readers disagree on which statement holds the opacity
			o := ftoa(opacity)
			s.mtl.printf("Tr %s\n", o)
			s.mtl.printf("d %s\n", o)
			s.mtl.printf("D %s\n", o)
		}
	}
}

// selection is the material the last emitted primitive used.
type selection struct {
	valid bool
	id    int
}

func (s *Serializer) use(cur *selection, m *mesh.Mesh, id int) {
	if cur.valid && cur.id == id {
		return
	}
	mat := &m.Materials[id]
	name := MaterialName(s.settings, mat)
	s.obj.printf("usemtl %s\n", name)
	if _, ok := s.materials[name]; !ok {
		s.writeMaterial(mat)
		s.materials[name] = struct{}{}
	}
	*cur = selection{valid: true, id: id}
}

// Write appends e as one group. A malformed mesh is rejected before anything
// is written, leaving the serializer usable for the next element.
func (s *Serializer) Write(e *mesh.Element) error {
	if err := s.Ready(); err != nil {
		return err
	}
	label := ElementLabel(s.settings, e)
	m := &e.Mesh
	if err := m.Validate(); err != nil {
		return errors.Wrapf(err, "element %q", label)
	}

	s.obj.printf("g %s\n", label)
	s.obj.printf("s 1\n")

	for _, v := range m.Vertices {
		s.obj.printf("v %s %s %s\n", ftoa(v.X), ftoa(v.Y), ftoa(v.Z))
	}
	for _, n := range m.Normals {
		s.obj.printf("vn %s %s %s\n", ftoa(n.X), ftoa(n.Y), ftoa(n.Z))
	}
	for _, uv := range m.UVs {
		s.obj.printf("vt %s %s\n", ftoa(uv.U), ftoa(uv.V))
	}

	// obj indices are 1-based
	base := s.vertexTotal + 1
	hasUVs := m.HasUVs()
	corner := func(i int) string {
		idx := strconv.Itoa(i + base)
		if hasUVs {
			return idx + "/" + idx + "/" + idx
		}
		return idx + "//" + idx
	}

	var cur selection
	for i, f := range m.Faces {
		s.use(&cur, m, m.MaterialIDs[i])
		s.obj.printf("f %s %s %s\n", corner(f[0]), corner(f[1]), corner(f[2]))
	}

	// Any vertex touched by a triangle suppresses the edges ending in it,
	// whether or not the edge is a triangle side.
	used := m.FaceVertices()
	ids := m.EdgeMaterialIDs()
	for i, ed := range m.Edges {
		if used[ed[0]] || used[ed[1]] {
			continue
		}
		s.use(&cur, m, ids[i])
		s.obj.printf("l %d %d\n", ed[0]+base, ed[1]+base)
	}

	s.vertexTotal += len(m.Vertices)
	return s.flush()
}
