package installer

import (
	"fmt"
)

type DirMissingError struct {
	AppDir string
}

func (e *DirMissingError) Error() string {
	return fmt.Sprintf("applications directory %s does not exist", e.AppDir)
}

type NotADirectoryError struct {
	AppDir string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.AppDir)
}

type NoneFoundError struct {
	AppDir string
}

func (e *NoneFoundError) Error() string {
	return fmt.Sprintf("no macOS installer found in %s", e.AppDir)
}
