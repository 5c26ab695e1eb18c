package devices

import (
	"fmt"
	"io"
	"strconv"

	"github.com/osmedia/multiboot/i18n"
	"github.com/osmedia/multiboot/ui"
)

// Selector runs the interactive pick-a-disk dialog. Selection returns the
// opaque device path; no Device object survives past the prompt, every later
// operation re-queries the device by path.
type Selector struct {
	prompter ui.Prompter
	out      io.Writer
	tr       *i18n.Catalog
}

func NewSelector(prompter ui.Prompter, out io.Writer, tr *i18n.Catalog) *Selector {
	return &Selector{prompter: prompter, out: out, tr: tr}
}

func (s *Selector) Select(external []Device) (string, error) {
	if len(external) == 0 {
		return "", &NoneDetectedError{}
	}

	fmt.Fprintln(s.out, s.tr.T("disk.available_disks"))
	for i, device := range external {
		fmt.Fprintf(s.out, "   [%d] %s - %s\n", i+1, device.Path, device.Label(s.tr))
	}

	max := strconv.Itoa(len(external))

	return s.prompter.PromptWithRetry(
		s.tr.T("disk.pick_target", "max", max),
		s.tr.T("disk.invalid_range", "max", max),
		func(answer string) (string, bool) {
			idx, err := strconv.Atoi(answer)
			if err != nil || idx < 1 || idx > len(external) {
				return "", false
			}
			return external[idx-1].Path, true
		},
	)
}
