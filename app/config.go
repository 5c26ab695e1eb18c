package app

import (
	"encoding/json"
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type Config struct {
	// AppDir is scanned for installer application bundles.
	AppDir string

	// MarginSizeMB is the safety margin added to every installer's content
	// size when its partition is planned.
	MarginSizeMB uint64

	// MaxVolumeWaitSeconds bounds the wait for a freshly created partition
	// to mount.
	MaxVolumeWaitSeconds int

	// MinVolumeSizeBytes is the size floor for the verification fallback on
	// volumes without recognizable installation artifacts.
	MinVolumeSizeBytes uint64

	// PromptAttempts bounds every interactive question.
	PromptAttempts int
}

func DefaultConfig() Config {
	return Config{
		AppDir:               "/Applications",
		MarginSizeMB:         500,
		MaxVolumeWaitSeconds: 60,
		MinVolumeSizeBytes:   500 * 1024 * 1024,
		PromptAttempts:       3,
	}
}

func (c Config) MaxVolumeWait() time.Duration {
	return time.Duration(c.MaxVolumeWaitSeconds) * time.Second
}

func LoadConfigFromPath(fs boshsys.FileSystem, path string) (Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	bytes, err := fs.ReadFile(path)
	if err != nil {
		return config, bosherr.WrapError(err, "Reading config file")
	}

	err = json.Unmarshal(bytes, &config)
	if err != nil {
		return config, bosherr.WrapError(err, "Parsing config file")
	}

	return config, nil
}
