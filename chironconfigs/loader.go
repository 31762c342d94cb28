package chironconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/chiron/configs"
	"github.com/reusee/chiron/logs"
	"github.com/reusee/chiron/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"chiron.cue",
	".chiron.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	dirs := []string{}

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	if mode != modes.ModeDevelopment {
		// user config dir
		if configDir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, configDir)
		}
		// system wide dir
		dirs = append(dirs, "/etc")
	}

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
