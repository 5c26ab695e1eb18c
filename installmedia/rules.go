package installmedia

import (
	"github.com/osmedia/multiboot/i18n"
	"github.com/osmedia/multiboot/progress"
)

// WriterRules maps createinstallmedia's output phases to progress. The bare
// "install" trigger sits before the base-system triggers, so a line naming
// both reads as the earlier phase.
func WriterRules(tr *i18n.Catalog) []progress.Rule {
	return []progress.Rule{
		{Trigger: "erasing", Percent: 5, Label: tr.T("progress.erasing_volume")},
		{Trigger: "formatting", Percent: 5, Label: tr.T("progress.erasing_volume")},
		{Trigger: "copying", Percent: 20, Label: tr.T("progress.copying_files")},
		{Trigger: "install", Percent: 40, Label: tr.T("progress.installing")},
		{Trigger: "base system", Percent: 60, Label: tr.T("progress.installing_base_system")},
		{Trigger: "basesystem", Percent: 60, Label: tr.T("progress.installing_base_system")},
		{Trigger: "packages", Percent: 75, Label: tr.T("progress.installing_packages")},
		{Trigger: "complete", Percent: 100, Label: tr.T("progress.done")},
		{Trigger: "done", Percent: 100, Label: tr.T("progress.done")},
		{Trigger: "success", Percent: 100, Label: tr.T("progress.done")},
	}
}
