// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"objexport/conlog"
	"objexport/cvar"
)

var (
	Developer           *cvar.Cvar
	ExportSkipMalformed *cvar.Cvar
	ExportWorkers       *cvar.Cvar
	ObjUseElementGUIDs  *cvar.Cvar
	ObjUseElementNames  *cvar.Cvar
	ObjUseMaterialNames *cvar.Cvar
)

func init() {
	Developer = cvar.MustRegister("developer", "0", cvar.NONE)
	Developer.SetCallback(func(cv *cvar.Cvar) {
		conlog.SetDeveloper(cv.Bool())
	})
	ExportSkipMalformed = cvar.MustRegister("export_skip_malformed", "0", cvar.ARCHIVE)
	ExportWorkers = cvar.MustRegister("export_workers", "4", cvar.ARCHIVE)
	ObjUseElementGUIDs = cvar.MustRegister("obj_use_element_guids", "0", cvar.ARCHIVE)
	ObjUseElementNames = cvar.MustRegister("obj_use_element_names", "0", cvar.ARCHIVE)
	ObjUseMaterialNames = cvar.MustRegister("obj_use_material_names", "0", cvar.ARCHIVE)
}
