// SPDX-License-Identifier: GPL-2.0-or-later

package wavefront

import (
	"strings"
	"unicode"

	"objexport/mesh"
)

// Settings selects which identifiers end up in the written files.
type Settings struct {
	// UseMaterialNames writes Material.OriginalName instead of Material.Name.
	UseMaterialNames bool
	// UseElementGUIDs labels groups with Element.GUID.
	UseElementGUIDs bool
	// UseElementNames labels groups with Element.Name unless GUIDs are used.
	UseElementNames bool
}

// ElementLabel returns the group label of e.
func ElementLabel(s Settings, e *mesh.Element) string {
	switch {
	case s.UseElementGUIDs:
		return e.GUID
	case s.UseElementNames:
		return e.Name
	default:
		return e.UniqueID
	}
}

// MaterialName returns the sanitized name m is written and registered under.
func MaterialName(s Settings, m *mesh.Material) string {
	n := m.Name
	if s.UseMaterialNames {
		n = m.OriginalName
	}
	return SanitizeMaterialName(n)
}

// SanitizeMaterialName replaces white space, which would split the name in
// newmtl and usemtl statements.
func SanitizeMaterialName(n string) string {
	if n == "" {
		return "unnamed"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, n)
}
