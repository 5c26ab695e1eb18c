package volume

import (
	"path/filepath"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/osmedia/multiboot/diskutil"
)

const (
	mountRoot    = "/Volumes"
	pollInterval = 500 * time.Millisecond
)

// Words of an installer name that carry no identity on their own and would
// match nearly every installer volume.
var stopwords = map[string]bool{
	"os":     true,
	"x":      true,
	"macos":  true,
	"install": true,
}

// MeaningfulKeywords returns the lowercased words of an installer name with
// the stopwords removed. "Install macOS Sierra" keeps only "sierra".
func MeaningfulKeywords(installerName string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(installerName)) {
		if !stopwords[word] {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

type resolver struct {
	fs             boshsys.FileSystem
	diskutilClient diskutil.Client
	timeService    clock.Clock
	logger         boshlog.Logger
	logTag         string
}

func NewResolver(
	fs boshsys.FileSystem,
	diskutilClient diskutil.Client,
	timeService clock.Clock,
	logger boshlog.Logger,
) Resolver {
	return &resolver{
		fs:             fs,
		diskutilClient: diskutilClient,
		timeService:    timeService,
		logger:         logger,
		logTag:         "VolumeResolver",
	}
}

func (r *resolver) WaitForMount(name string, maxWait time.Duration) bool {
	path := filepath.Join(mountRoot, name)
	start := r.timeService.Now()

	r.logger.Info(r.logTag, "Waiting for volume %s to mount", name)

	for {
		if r.timeService.Since(start) > maxWait {
			r.logger.Error(r.logTag, "Volume %s still not mounted after %s", name, maxWait)
			return false
		}

		if r.fs.FileExists(path) && r.isMounted(path) {
			return true
		}

		r.timeService.Sleep(pollInterval)
	}
}

func (r *resolver) Resolve(expectedName, installerName string) (string, error) {
	expectedPath := filepath.Join(mountRoot, expectedName)
	if r.fs.FileExists(expectedPath) && r.isMounted(expectedPath) {
		r.logger.Info(r.logTag, "Volume found at the expected path %s", expectedPath)
		return expectedPath, nil
	}

	notFound := &NotFoundError{InstallerName: installerName, ExpectedVolume: expectedName}

	if !r.fs.FileExists(mountRoot) {
		return "", notFound
	}

	candidates, err := r.fs.Glob(filepath.Join(mountRoot, "*"))
	if err != nil {
		r.logger.Error(r.logTag, "Scanning %s: %s", mountRoot, err.Error())
		return "", notFound
	}

	expectedLower := strings.ToLower(expectedName)
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(filepath.Base(candidate)), expectedLower) && r.isMounted(candidate) {
			r.logger.Info(r.logTag, "Volume found by expected name: %s", candidate)
			return candidate, nil
		}
	}

	keywords := MeaningfulKeywords(installerName)
	if len(keywords) == 0 {
		return "", notFound
	}

	for _, candidate := range candidates {
		nameLower := strings.ToLower(filepath.Base(candidate))
		for _, keyword := range keywords {
			if strings.Contains(nameLower, keyword) && r.isMounted(candidate) {
				r.logger.Info(r.logTag, "Volume found by keyword %q: %s", keyword, candidate)
				return candidate, nil
			}
		}
	}

	return "", notFound
}

// isMounted confirms a candidate is a real mounted directory: canonicalize,
// require an existing directory, then re-query the disk-management utility.
// Every failure reads as "not mounted" so the callers' polling loops survive
// transient I/O errors.
func (r *resolver) isMounted(path string) bool {
	canonical, err := r.fs.ReadAndFollowLink(path)
	if err != nil || canonical == "" {
		canonical = path
	}

	stat, err := r.fs.Stat(canonical)
	if err != nil || !stat.IsDir() {
		return false
	}

	return r.diskutilClient.IsPathMounted(canonical)
}
