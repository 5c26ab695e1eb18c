package fakes

import (
	"time"

	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/osmedia/multiboot/progress"
)

type RunCall struct {
	Cmd      boshsys.Command
	Rules    []progress.Rule
	Label    string
	Estimate time.Duration
}

type FakeExecutor struct {
	RunCalls []RunCall

	RunOutcomes []progress.Outcome
	RunErrs     []error
}

// AddResult queues one outcome/error pair; successive RunWithProgress calls
// consume them in order, the last pair repeats.
func (e *FakeExecutor) AddResult(outcome progress.Outcome, err error) {
	e.RunOutcomes = append(e.RunOutcomes, outcome)
	e.RunErrs = append(e.RunErrs, err)
}

func (e *FakeExecutor) RunWithProgress(
	cmd boshsys.Command,
	rules []progress.Rule,
	label string,
	estimate time.Duration,
) (progress.Outcome, error) {
	e.RunCalls = append(e.RunCalls, RunCall{Cmd: cmd, Rules: rules, Label: label, Estimate: estimate})

	if len(e.RunOutcomes) == 0 {
		return progress.Outcome{}, nil
	}

	idx := len(e.RunCalls) - 1
	if idx >= len(e.RunOutcomes) {
		idx = len(e.RunOutcomes) - 1
	}
	return e.RunOutcomes[idx], e.RunErrs[idx]
}
