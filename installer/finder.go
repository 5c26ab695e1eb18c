package installer

import (
	"os"
	"path/filepath"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type Finder struct {
	fs     boshsys.FileSystem
	logger boshlog.Logger
	logTag string
}

func NewFinder(fs boshsys.FileSystem, logger boshlog.Logger) *Finder {
	return &Finder{
		fs:     fs,
		logger: logger,
		logTag: "InstallerFinder",
	}
}

// Find scans the applications directory for installer bundles matching the
// target table. Each target claims at most one bundle, first candidate wins,
// and a bundle claimed by an earlier target is invisible to later ones.
func (f *Finder) Find(appDir string, targets []Target) ([]Installer, error) {
	if !f.fs.FileExists(appDir) {
		return nil, &DirMissingError{AppDir: appDir}
	}

	stat, err := f.fs.Stat(appDir)
	if err != nil || !stat.IsDir() {
		return nil, &NotADirectoryError{AppDir: appDir}
	}

	bundles, err := f.fs.Glob(filepath.Join(appDir, "*.app"))
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Scanning %s", appDir)
	}

	claimed := map[string]bool{}
	var found []Installer

	for _, target := range targets {
		var candidates []string
		for _, bundle := range bundles {
			if claimed[bundle] {
				continue
			}
			base := filepath.Base(bundle)
			if strings.Contains(base, target.Keyword) && strings.Contains(base, "Install") {
				candidates = append(candidates, bundle)
			}
		}

		if len(candidates) == 0 {
			continue
		}
		if len(candidates) > 1 {
			f.logger.Warn(f.logTag, "Several bundles match %s, using %s", target.Name, filepath.Base(candidates[0]))
		}

		path := candidates[0]

		stat, err := f.fs.Stat(path)
		if err != nil || !stat.IsDir() {
			f.logger.Warn(f.logTag, "Ignoring %s, %s is not an application bundle", target.Name, path)
			continue
		}

		f.logger.Info(f.logTag, "Computing content size of %s", target.Name)
		size, err := f.directorySize(path)
		if err != nil {
			f.logger.Warn(f.logTag, "Sizing %s: %s", path, err.Error())
			continue
		}

		claimed[path] = true
		found = append(found, Installer{
			Name:      target.Name,
			Path:      path,
			Volume:    target.Volume,
			SizeBytes: size,
		})
	}

	if len(found) == 0 {
		return nil, &NoneFoundError{AppDir: appDir}
	}

	return found, nil
}

func (f *Finder) directorySize(root string) (uint64, error) {
	var total uint64

	err := f.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += uint64(info.Size())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}
