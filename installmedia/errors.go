package installmedia

import (
	"fmt"
	"time"
)

// Hint classifies a writer-tool failure into the guidance shown to the user.
type Hint string

const (
	// HintProcessKilled marks exits that look like the system killed the
	// tool: disk space, corruption, permissions, or an OS kill.
	HintProcessKilled Hint = "process-killed"

	// HintCheckMounted marks ordinary non-zero exits.
	HintCheckMounted Hint = "check-mounted"
)

type ToolMissingError struct {
	InstallerName string
	ToolPath      string
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("createinstallmedia missing for %s, expected at %s", e.InstallerName, e.ToolPath)
}

type ToolNotExecutableError struct {
	InstallerName string
	ToolPath      string
}

func (e *ToolNotExecutableError) Error() string {
	return fmt.Sprintf("createinstallmedia for %s is not executable", e.InstallerName)
}

type VolumeTimeoutError struct {
	InstallerName string
	Volume        string
	MaxWait       time.Duration
}

func (e *VolumeTimeoutError) Error() string {
	return fmt.Sprintf("volume %s for %s not mounted after %s", e.Volume, e.InstallerName, e.MaxWait)
}

type VolumeNotAccessibleError struct {
	InstallerName string
	Path          string
}

func (e *VolumeNotAccessibleError) Error() string {
	return fmt.Sprintf("volume %s is not accessible for %s", e.Path, e.InstallerName)
}

type InstallationFailedError struct {
	InstallerName string
	ExitStatus    int
	Output        string
	Hint          Hint
}

func (e *InstallationFailedError) Error() string {
	return fmt.Sprintf("installation of %s failed with exit status %d", e.InstallerName, e.ExitStatus)
}

type VerificationFailedError struct {
	InstallerName string
	Path          string
	Listing       []string
}

func (e *VerificationFailedError) Error() string {
	return fmt.Sprintf("installation of %s does not look successful on %s", e.InstallerName, e.Path)
}
