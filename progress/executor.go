package progress

import (
	"strings"
	"sync"
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/osmedia/multiboot/ui"
)

type executor struct {
	runner boshsys.CmdRunner
	bar    *ui.Bar
	logger boshlog.Logger
	logTag string
}

func NewExecutor(runner boshsys.CmdRunner, bar *ui.Bar, logger boshlog.Logger) Executor {
	return &executor{
		runner: runner,
		bar:    bar,
		logger: logger,
		logTag: "ProgressExecutor",
	}
}

func (e *executor) RunWithProgress(
	cmd boshsys.Command,
	rules []Rule,
	label string,
	estimate time.Duration,
) (Outcome, error) {
	var mu sync.Mutex
	var lines []string

	// The runner drains stdout and stderr concurrently with the exit wait,
	// so line handling must tolerate calls from either stream's goroutine.
	onLine := func(line string) {
		mu.Lock()
		defer mu.Unlock()

		lines = append(lines, line)
		e.logger.Debug(e.logTag, "%s", line)

		if rule, found := FirstMatch(rules, line); found {
			e.bar.Update(rule.Percent, rule.Label)
		}
	}

	stdout := NewLineWriter(onLine)
	stderr := NewLineWriter(onLine)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	e.bar.Start(label, estimate)

	process, err := e.runner.RunComplexCommandAsync(cmd)
	if err != nil {
		e.bar.Done()
		return Outcome{ExitStatus: -1}, bosherr.WrapErrorf(err, "Starting %s", cmd.Name)
	}

	result := <-process.Wait()

	stdout.Flush()
	stderr.Flush()
	e.bar.Done()

	mu.Lock()
	captured := append([]string(nil), lines...)
	mu.Unlock()

	outcome := Outcome{ExitStatus: result.ExitStatus, Lines: captured}

	if result.ExitStatus != 0 {
		return outcome, &ExecFailedError{
			Command:    append([]string{cmd.Name}, cmd.Args...),
			ExitStatus: result.ExitStatus,
			Output:     strings.Join(captured, "\n"),
		}
	}

	return outcome, nil
}
