// SPDX-License-Identifier: GPL-2.0-or-later

// Package scene decodes YAML scene descriptions into elements ready for
// export. Element order in the file is the export order.
package scene

import (
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"objexport/filesystem"
	"objexport/math/vec"
	"objexport/mesh"
)

type material struct {
	Name         string      `yaml:"name"`
	OriginalName string      `yaml:"original_name"`
	Diffuse      *[3]float32 `yaml:"diffuse"`
	Specular     *[3]float32 `yaml:"specular"`
	Specularity  *float32    `yaml:"specularity"`
	Transparency *float32    `yaml:"transparency"`
}

type element struct {
	ID          string       `yaml:"id"`
	GUID        string       `yaml:"guid"`
	Name        string       `yaml:"name"`
	Vertices    [][3]float32 `yaml:"vertices"`
	Normals     [][3]float32 `yaml:"normals"`
	UVs         [][2]float32 `yaml:"uvs"`
	Faces       [][3]int     `yaml:"faces"`
	Edges       [][2]int     `yaml:"edges"`
	Materials   []string     `yaml:"materials"`
	MaterialIDs []int        `yaml:"material_ids"`
}

type file struct {
	Materials map[string]material `yaml:"materials"`
	Elements  []element           `yaml:"elements"`
}

// Scene is the decoded content of one scene file.
type Scene struct {
	Elements []*mesh.Element
}

// NewUniqueID returns an element id for elements that do not bring one.
func NewUniqueID() string {
	return "product-" + uuid.Must(uuid.NewV7()).String()
}

// Decode reads a scene from r.
func Decode(r io.Reader) (*Scene, error) {
	var f file
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&f); err != nil {
		if err == io.EOF {
			return &Scene{}, nil
		}
		return nil, errors.Wrap(err, "decoding scene")
	}
	s := &Scene{Elements: make([]*mesh.Element, 0, len(f.Elements))}
	for i := range f.Elements {
		e, err := f.convert(&f.Elements[i])
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		s.Elements = append(s.Elements, e)
	}
	return s, nil
}

// Load reads a scene file from the search path.
func Load(name string) (*Scene, error) {
	r, err := filesystem.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening scene %s", name)
	}
	defer r.Close()
	s, err := Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return s, nil
}

func (f *file) convert(in *element) (*mesh.Element, error) {
	out := &mesh.Element{
		UniqueID: in.ID,
		GUID:     in.GUID,
		Name:     in.Name,
	}
	if out.UniqueID == "" {
		out.UniqueID = NewUniqueID()
	}
	m := &out.Mesh
	m.Vertices = vectors(in.Vertices)
	m.Normals = vectors(in.Normals)
	for _, uv := range in.UVs {
		m.UVs = append(m.UVs, vec.V2FromA(uv))
	}
	m.Faces = in.Faces
	m.Edges = in.Edges
	m.MaterialIDs = in.MaterialIDs
	for _, key := range in.Materials {
		mat, ok := f.Materials[key]
		if !ok {
			return nil, errors.Errorf("unknown material %q", key)
		}
		m.Materials = append(m.Materials, mat.convert(key))
	}
	return out, nil
}

// convert builds a mesh.Material; key is the name if none is given.
func (in material) convert(key string) mesh.Material {
	out := mesh.Material{
		Name:         in.Name,
		OriginalName: in.OriginalName,
		Specularity:  in.Specularity,
		Transparency: in.Transparency,
	}
	if out.Name == "" {
		out.Name = key
	}
	if out.OriginalName == "" {
		out.OriginalName = out.Name
	}
	if in.Diffuse != nil {
		d := vec.VFromA(*in.Diffuse)
		out.Diffuse = &d
	}
	if in.Specular != nil {
		s := vec.VFromA(*in.Specular)
		out.Specular = &s
	}
	return out
}

func vectors(in [][3]float32) []vec.Vec3 {
	if len(in) == 0 {
		return nil
	}
	out := make([]vec.Vec3, 0, len(in))
	for _, v := range in {
		out = append(out, vec.VFromA(v))
	}
	return out
}
