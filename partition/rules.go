package partition

import (
	"github.com/osmedia/multiboot/i18n"
	"github.com/osmedia/multiboot/progress"
)

// The generic "unmount"/"mount" triggers come after their more specific
// forms so the specific label wins on lines containing both.
func PartitionRules(tr *i18n.Catalog) []progress.Rule {
	return []progress.Rule{
		{Trigger: "unmounting", Percent: 10, Label: tr.T("progress.unmounting_disk")},
		{Trigger: "unmount", Percent: 10, Label: tr.T("progress.unmounting_disk")},
		{Trigger: "creating partition", Percent: 20, Label: tr.T("progress.creating_partition_table")},
		{Trigger: "waiting for partitions to activate", Percent: 40, Label: tr.T("progress.waiting_partitions")},
		{Trigger: "formatting", Percent: 60, Label: tr.T("progress.formatting_partitions")},
		{Trigger: "mounting", Percent: 80, Label: tr.T("progress.mounting_volumes")},
		{Trigger: "mount", Percent: 80, Label: tr.T("progress.mounting_volumes")},
		{Trigger: "finished", Percent: 100, Label: tr.T("progress.done")},
		{Trigger: "complete", Percent: 100, Label: tr.T("progress.done")},
	}
}

func RestoreRules(tr *i18n.Catalog) []progress.Rule {
	return []progress.Rule{
		{Trigger: "unmounting", Percent: 10, Label: tr.T("progress.unmounting_disk")},
		{Trigger: "unmount", Percent: 10, Label: tr.T("progress.unmounting_disk")},
		{Trigger: "erasing", Percent: 20, Label: tr.T("progress.erasing_partition")},
		{Trigger: "formatting", Percent: 40, Label: tr.T("progress.formatting_disk")},
		{Trigger: "creating", Percent: 60, Label: tr.T("progress.creating_partition")},
		{Trigger: "mounting", Percent: 80, Label: tr.T("progress.mounting_volume")},
		{Trigger: "mount", Percent: 80, Label: tr.T("progress.mounting_volume")},
		{Trigger: "finished", Percent: 100, Label: tr.T("progress.done")},
		{Trigger: "complete", Percent: 100, Label: tr.T("progress.done")},
	}
}
