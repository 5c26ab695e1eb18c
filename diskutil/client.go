package diskutil

import (
	"bytes"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"howett.net/plist"
)

const (
	binaryName = "diskutil"

	// A path can exist transiently during mount negotiation, so mounted
	// confirmation re-queries diskutil; the query itself must not hang the
	// polling loop.
	mountQueryTimeout   = 5 * time.Second
	terminateGracePeriod = 1 * time.Second
)

type client struct {
	runner      boshsys.CmdRunner
	timeService clock.Clock
	logger      boshlog.Logger
	logTag      string
	path        string
}

func NewClient(runner boshsys.CmdRunner, timeService clock.Clock, logger boshlog.Logger) Client {
	return &client{
		runner:      runner,
		timeService: timeService,
		logger:      logger,
		logTag:      "DiskutilClient",
		path:        binaryName,
	}
}

func (c *client) Path() string { return c.path }

func (c *client) List() (DiskList, error) {
	var list DiskList

	stdout, err := c.runQuery("list", "-plist")
	if err != nil {
		return list, err
	}

	if _, err := plist.Unmarshal([]byte(stdout), &list); err != nil {
		return list, &DecodeError{Cause: err}
	}

	return list, nil
}

func (c *client) Info(idOrPath string) (DiskInfo, error) {
	var info DiskInfo

	stdout, err := c.runQuery("info", "-plist", idOrPath)
	if err != nil {
		return info, err
	}

	if _, err := plist.Unmarshal([]byte(stdout), &info); err != nil {
		return info, &DecodeError{Cause: err}
	}

	return info, nil
}

func (c *client) IsPathMounted(path string) bool {
	var stdout bytes.Buffer

	process, err := c.runner.RunComplexCommandAsync(boshsys.Command{
		Name:   c.path,
		Args:   []string{"info", path},
		Stdout: &stdout,
	})
	if err != nil {
		c.logger.Debug(c.logTag, "Mount query for %s failed to start: %s", path, err.Error())
		return false
	}

	select {
	case result := <-process.Wait():
		if result.ExitStatus != 0 {
			return false
		}
		return strings.Contains(stdout.String(), "Mounted")
	case <-c.timeService.After(mountQueryTimeout):
		c.logger.Debug(c.logTag, "Mount query for %s timed out", path)
		if err := process.TerminateNicely(terminateGracePeriod); err != nil {
			c.logger.Debug(c.logTag, "Terminating mount query: %s", err.Error())
		}
		return false
	}
}

func (c *client) UnmountDisk(diskPath string) error {
	c.logger.Info(c.logTag, "Unmounting disk %s", diskPath)

	stdout, stderr, exitStatus, err := c.runner.RunCommand(c.path, "unmountDisk", diskPath)
	if err == nil {
		return nil
	}

	output := strings.TrimSpace(stderr + "\n" + stdout)
	if IsBusyOutput(output) {
		name, pid, _ := ParseBusyProcess(output)
		return &DeviceBusyError{
			DiskPath:    diskPath,
			ProcessName: name,
			ProcessID:   pid,
			Output:      output,
		}
	}

	return &ExecError{
		Command:    []string{c.path, "unmountDisk", diskPath},
		ExitStatus: exitStatus,
		Stderr:     stderr,
		Cause:      err,
	}
}

func (c *client) runQuery(args ...string) (string, error) {
	if !c.runner.CommandExists(c.path) {
		return "", &ToolNotFoundError{Tool: c.path}
	}

	stdout, stderr, exitStatus, err := c.runner.RunCommand(c.path, args...)
	if err != nil {
		return "", &ExecError{
			Command:    append([]string{c.path}, args...),
			ExitStatus: exitStatus,
			Stderr:     stderr,
			Cause:      err,
		}
	}

	return stdout, nil
}
