// SPDX-License-Identifier: GPL-2.0-or-later

// Package mesh holds the triangulated geometry handed to the exporters.
package mesh

import (
	"github.com/pkg/errors"

	"objexport/math/vec"
)

var ErrMalformed = errors.New("malformed mesh")

type Material struct {
	Name         string
	OriginalName string
	Diffuse      *vec.Vec3
	Specular     *vec.Vec3
	Specularity  *float32
	// Transparency is in [0,1], 0 is fully opaque.
	Transparency *float32
}

func (m *Material) HasDiffuse() bool {
	return m.Diffuse != nil
}

func (m *Material) HasSpecular() bool {
	return m.Specular != nil
}

func (m *Material) HasSpecularity() bool {
	return m.Specularity != nil
}

func (m *Material) HasTransparency() bool {
	return m.Transparency != nil
}

// Mesh is a triangulation with loose edges. MaterialIDs holds one entry per
// face followed by one entry per edge, each indexing into Materials.
type Mesh struct {
	Vertices    []vec.Vec3
	Normals     []vec.Vec3
	UVs         []vec.Vec2
	Faces       [][3]int
	Edges       [][2]int
	Materials   []Material
	MaterialIDs []int
}

func (m *Mesh) HasUVs() bool {
	return len(m.UVs) != 0
}

// FaceMaterialIDs returns the face segment of MaterialIDs.
func (m *Mesh) FaceMaterialIDs() []int {
	return m.MaterialIDs[:len(m.Faces)]
}

// EdgeMaterialIDs returns the edge segment of MaterialIDs.
func (m *Mesh) EdgeMaterialIDs() []int {
	return m.MaterialIDs[len(m.Faces) : len(m.Faces)+len(m.Edges)]
}

// FaceVertices reports for every vertex whether any face references it.
func (m *Mesh) FaceVertices() []bool {
	used := make([]bool, len(m.Vertices))
	for _, f := range m.Faces {
		for _, i := range f {
			used[i] = true
		}
	}
	return used
}

// Validate checks the index bookkeeping. Geometry itself is not inspected.
func (m *Mesh) Validate() error {
	if want := len(m.Faces) + len(m.Edges); len(m.MaterialIDs) < want {
		return errors.Wrapf(ErrMalformed, "%d material ids for %d faces and %d edges",
			len(m.MaterialIDs), len(m.Faces), len(m.Edges))
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Vertices) {
		return errors.Wrapf(ErrMalformed, "%d normals for %d vertices", len(m.Normals), len(m.Vertices))
	}
	if len(m.UVs) != 0 && len(m.UVs) != len(m.Vertices) {
		return errors.Wrapf(ErrMalformed, "%d uvs for %d vertices", len(m.UVs), len(m.Vertices))
	}
	nv := len(m.Vertices)
	for i, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= nv {
				return errors.Wrapf(ErrMalformed, "face %d: vertex %d out of range", i, v)
			}
		}
		if err := m.checkMaterial(m.MaterialIDs[i]); err != nil {
			return errors.Wrapf(err, "face %d", i)
		}
	}
	for i, e := range m.Edges {
		for _, v := range e {
			if v < 0 || v >= nv {
				return errors.Wrapf(ErrMalformed, "edge %d: vertex %d out of range", i, v)
			}
		}
		if err := m.checkMaterial(m.MaterialIDs[len(m.Faces)+i]); err != nil {
			return errors.Wrapf(err, "edge %d", i)
		}
	}
	return nil
}

func (m *Mesh) checkMaterial(id int) error {
	if id < 0 || id >= len(m.Materials) {
		return errors.Wrapf(ErrMalformed, "material id %d out of range [0,%d)", id, len(m.Materials))
	}
	return nil
}

// Element is one product of a conversion run together with its geometry.
type Element struct {
	UniqueID string
	GUID     string
	Name     string
	Mesh     Mesh
}
