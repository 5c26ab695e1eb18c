package diskutil

import (
	"fmt"
	"regexp"
	"strings"
)

// ToolNotFoundError means the external device-management binary could not be
// located on this system.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("external tool '%s' not found", e.Tool)
}

// ExecError means the external utility ran but exited non-zero.
type ExecError struct {
	Command    []string
	ExitStatus int
	Stderr     string
	Cause      error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("command '%s' exited with status %d", strings.Join(e.Command, " "), e.ExitStatus)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ExecError) Unwrap() error { return e.Cause }

// DecodeError means the utility's structured output could not be parsed.
// Callers treat it as "no usable data for this record" except for the
// top-level listing, where nothing downstream can proceed.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding diskutil output: %s", e.Cause.Error())
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// DeviceBusyError is an ExecError refined by recognizing diskutil's
// in-use-by-process signature on stderr. ProcessName and ProcessID are empty
// when the signature matched only the generic "Couldn't unmount" form.
type DeviceBusyError struct {
	DiskPath    string
	ProcessName string
	ProcessID   string
	Output      string
}

func (e *DeviceBusyError) Error() string {
	if e.ProcessName != "" {
		return fmt.Sprintf("disk %s is in use by process %s (%s)", e.DiskPath, e.ProcessID, e.ProcessName)
	}
	return fmt.Sprintf("disk %s is in use by another process", e.DiskPath)
}

var busyProcessRegexp = regexp.MustCompile(`in use by process (\d+) \(([^)]+)\)`)

// ParseBusyProcess extracts the blocking process identity from diskutil
// error output. ok is false when the signature is absent.
func ParseBusyProcess(output string) (name, pid string, ok bool) {
	match := busyProcessRegexp.FindStringSubmatch(output)
	if match == nil {
		return "", "", false
	}
	return match[2], match[1], true
}

// IsBusyOutput reports whether diskutil's output indicates the device is held
// open by another process, including the variant without a process identity.
func IsBusyOutput(output string) bool {
	return strings.Contains(output, "in use by process") || strings.Contains(output, "Couldn't unmount")
}
