// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"objexport/export"
	"objexport/wavefront"
)

// ObjSettings snapshots the obj_* cvars.
func ObjSettings() wavefront.Settings {
	return wavefront.Settings{
		UseMaterialNames: ObjUseMaterialNames.Bool(),
		UseElementGUIDs:  ObjUseElementGUIDs.Bool(),
		UseElementNames:  ObjUseElementNames.Bool(),
	}
}

// ExportOptions snapshots the export_* cvars.
func ExportOptions() export.Options {
	return export.Options{
		Workers:       ExportWorkers.Int(),
		SkipMalformed: ExportSkipMalformed.Bool(),
	}
}
