package installmedia

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// The writer tool gives no definitive success signal, so verification is a
// heuristic: known artifacts of an installation volume first, a bounded
// size estimate as fallback.
var expectedArtifacts = []string{
	"applications",
	"system",
	"library",
	"basesystem.dmg",
	"installesd.dmg",
	"install macos",
	"install os x",
}

// Sampling cap for the size fallback. Counting a handful of entries is
// enough to tell an aborted write from a populated volume.
const maxSampledFiles = 100

var errSampleFull = errors.New("sample full")

type Verifier struct {
	fs                 boshsys.FileSystem
	logger             boshlog.Logger
	logTag             string
	minVolumeSizeBytes uint64
}

func NewVerifier(fs boshsys.FileSystem, logger boshlog.Logger, minVolumeSizeBytes uint64) *Verifier {
	return &Verifier{
		fs:                 fs,
		logger:             logger,
		logTag:             "InstallMediaVerifier",
		minVolumeSizeBytes: minVolumeSizeBytes,
	}
}

// Verify reports whether a written volume looks like a valid installation.
// An unreadable or empty volume fails; a volume carrying any expected
// artifact passes immediately; anything else passes only if its sampled
// size reaches the configured minimum, and then with a warning.
func (v *Verifier) Verify(volPath string) bool {
	stat, err := v.fs.Stat(volPath)
	if err != nil || !stat.IsDir() {
		return false
	}

	items, err := v.listEntries(volPath)
	if err != nil {
		v.logger.Warn(v.logTag, "Listing %s: %s", volPath, err.Error())
		return false
	}
	if len(items) == 0 {
		v.logger.Warn(v.logTag, "Volume %s is empty", volPath)
		return false
	}

	if v.hasExpectedArtifacts(items) {
		return true
	}

	size := v.estimateSize(volPath)
	if size < v.minVolumeSizeBytes {
		v.logger.Warn(
			v.logTag,
			"Volume %s holds only %d bytes of sampled content, expected at least %d",
			volPath, size, v.minVolumeSizeBytes,
		)
		return false
	}

	v.logger.Warn(v.logTag, "Volume %s has non-standard content but a plausible size", volPath)
	return true
}

// ListItems returns the base names of the volume's root entries, for
// failure diagnostics. Best effort, empty on any error.
func (v *Verifier) ListItems(volPath string) []string {
	items, err := v.listEntries(volPath)
	if err != nil {
		return nil
	}
	return items
}

func (v *Verifier) listEntries(volPath string) ([]string, error) {
	paths, err := v.fs.Glob(filepath.Join(volPath, "*"))
	if err != nil {
		return nil, err
	}

	items := make([]string, 0, len(paths))
	for _, path := range paths {
		items = append(items, filepath.Base(path))
	}
	return items, nil
}

func (v *Verifier) hasExpectedArtifacts(items []string) bool {
	for _, item := range items {
		lower := strings.ToLower(item)
		for _, expected := range expectedArtifacts {
			if strings.Contains(lower, expected) {
				v.logger.Debug(v.logTag, "Found expected artifact %q", item)
				return true
			}
		}
	}
	return false
}

// estimateSize sums file sizes under the volume, stopping after
// maxSampledFiles files. Unreadable entries are skipped, not fatal.
func (v *Verifier) estimateSize(volPath string) uint64 {
	var total uint64
	count := 0

	paths, err := v.fs.Glob(filepath.Join(volPath, "*"))
	if err != nil {
		return 0
	}

	for _, path := range paths {
		if count >= maxSampledFiles {
			break
		}

		stat, err := v.fs.Stat(path)
		if err != nil {
			continue
		}

		if !stat.IsDir() {
			total += uint64(stat.Size())
			count++
			continue
		}

		err = v.fs.Walk(path, func(_ string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if count >= maxSampledFiles {
				return errSampleFull
			}
			if !info.IsDir() {
				total += uint64(info.Size())
				count++
			}
			return nil
		})
		if err != nil && !errors.Is(err, errSampleFull) {
			v.logger.Debug(v.logTag, "Sampling %s: %s", path, err.Error())
		}
	}

	return total
}
