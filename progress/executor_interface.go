package progress

import (
	"fmt"
	"strings"
	"time"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// Outcome carries the exit status and the captured output lines of a
// completed command, whether it succeeded or not.
type Outcome struct {
	ExitStatus int
	Lines      []string
}

func (o Outcome) Output() string {
	return strings.Join(o.Lines, "\n")
}

type ExecFailedError struct {
	Command    []string
	ExitStatus int
	Output     string
}

func (e *ExecFailedError) Error() string {
	return fmt.Sprintf("command %s failed with exit status %d", strings.Join(e.Command, " "), e.ExitStatus)
}

// Executor runs a long external command while scanning its combined output
// line by line against a rule table and rendering the matches on a progress
// bar. The Outcome is returned alongside the error so failure paths keep the
// captured output.
type Executor interface {
	RunWithProgress(cmd boshsys.Command, rules []Rule, label string, estimate time.Duration) (Outcome, error)
}
